package autotag

import (
	"fmt"
	"strings"
)

// DefaultPromptTemplate is the instruction block used when the user has not
// configured a prompt override.
const DefaultPromptTemplate = `You are an assistant that reads scientific papers and assigns concise reusable tags.

Rules:
- Tags must be one to three words long
- Use snake_case or simple ASCII
- Avoid overly generic terms
- Reuse identical tags across papers when referring to the same concept

For each paper generate three to eight tags covering:
- Topic
- Method or technique
- Material system or model organism

Return only valid JSON in the following format:

{
  "items": [
    {
      "key": "<record key>",
      "tags": ["tag1", "tag2"]
    }
  ]
}`

// BuildPrompt renders the instruction template, the optional seed-keyword
// vocabulary block, and one block per record into a single prompt string.
// The output is a deterministic function of its inputs.
func BuildPrompt(template, seedKeywords string, records []RecordMetadata) string {
	base := strings.TrimSpace(template)
	if base == "" {
		base = DefaultPromptTemplate
	}

	var b strings.Builder
	b.WriteString(base)

	if seeds := strings.TrimSpace(seedKeywords); seeds != "" {
		b.WriteString("\n\nThe user has provided the following preferred tag vocabulary:\n")
		b.WriteString(fmt.Sprintf("seed_keywords = [%s]\n", seeds))
		b.WriteString("\n- Prefer using these tags when they clearly apply\n")
		b.WriteString("- Do not force them if irrelevant")
	}

	b.WriteString("\n\n=== PAPERS ===\n\n")

	blocks := make([]string, 0, len(records))
	for i, rec := range records {
		blocks = append(blocks, recordBlock(i+1, rec))
	}
	b.WriteString(strings.Join(blocks, "\n\n---\n\n"))

	return strings.TrimSpace(b.String())
}

// recordBlock renders one record with a fixed field order.
func recordBlock(ordinal int, rec RecordMetadata) string {
	tags := "(none)"
	if len(rec.Tags) > 0 {
		tags = strings.Join(rec.Tags, ", ")
	}
	abstract := rec.Abstract
	if abstract == "" {
		abstract = "[no abstract available]"
	}

	lines := []string{
		fmt.Sprintf("Paper %d:", ordinal),
		fmt.Sprintf("key: %s", rec.Key),
		fmt.Sprintf("itemType: %s", rec.ItemType),
		fmt.Sprintf("title: %s", rec.Title),
		fmt.Sprintf("creators: %s", strings.Join(rec.Creators, "; ")),
		fmt.Sprintf("journal: %s", rec.Publication),
		fmt.Sprintf("date: %s", rec.Date),
		fmt.Sprintf("existing_tags: %s", tags),
		"abstract:",
		abstract,
	}
	return strings.Join(lines, "\n")
}
