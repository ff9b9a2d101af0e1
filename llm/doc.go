// Package llm provides a uniform abstraction over the LLM backends that can
// generate tag suggestions for bibliographic records.
//
// Every backend implements the Provider interface: it takes one rendered text
// prompt and returns the raw text the model produced. Providers handle their
// own request shapes, authentication, and response envelopes internally, so
// everything downstream of Provider only ever sees raw text.
//
// # Core Concepts
//
//  1. Provider: Name() plus GenerateTags(ctx, prompt). A provider must fail
//     with an error rather than return malformed data on transport errors,
//     authentication errors, or an empty response body.
//
//  2. Registry: ForName resolves the configured provider name to a concrete
//     Provider. Unknown names fall back to the OpenAI provider, since
//     provider selection is a configuration default, not a hard requirement.
//
//  3. Errors: The Error type categorizes failures (configuration, network,
//     protocol, provider-reported) while preserving the backend's original
//     message, which the caller may pattern-match for known failure
//     signatures.
//
// To add a new backend, implement Provider in this package and add a case to
// ForName and Configured.
package llm
