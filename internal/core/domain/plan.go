package domain

import (
	"fmt"
	"strings"
)

// BlockKind discriminates the structural blocks of a content plan.
type BlockKind string

const (
	BlockHeading   BlockKind = "heading"
	BlockParagraph BlockKind = "paragraph"
	BlockList      BlockKind = "list"
	BlockSignature BlockKind = "signature"
)

// Block is one structural unit of a content plan. Text and Items carry
// fully resolved text: placeholders are substituted before a block is
// appended, missing values become bracketed tokens like [PRESIDENTE].
type Block struct {
	Kind  BlockKind `json:"kind"`
	Level int       `json:"level,omitempty"` // heading level, 1-based
	Text  string    `json:"text,omitempty"`
	Items []string  `json:"items,omitempty"` // list entries

	// Signature block fields
	ChairLabel     string `json:"chair_label,omitempty"`
	SecretaryLabel string `json:"secretary_label,omitempty"`
	ChairName      string `json:"chair_name,omitempty"`
	SecretaryName  string `json:"secretary_name,omitempty"`
}

// ContentPlan is an ordered sequence of blocks ready for rendering.
// Once built it is only read, never mutated.
type ContentPlan struct {
	TemplateKey string  `json:"template_key"`
	Title       string  `json:"title"`
	Blocks      []Block `json:"blocks"`
}

// AddHeading appends a heading block.
func (p *ContentPlan) AddHeading(level int, text string) {
	p.Blocks = append(p.Blocks, Block{Kind: BlockHeading, Level: level, Text: text})
}

// AddParagraph appends a paragraph block.
func (p *ContentPlan) AddParagraph(text string) {
	p.Blocks = append(p.Blocks, Block{Kind: BlockParagraph, Text: text})
}

// AddList appends a bulleted list block.
func (p *ContentPlan) AddList(items []string) {
	p.Blocks = append(p.Blocks, Block{Kind: BlockList, Items: items})
}

// AddSignature appends the two-column signature block.
func (p *ContentPlan) AddSignature(chair, secretary string) {
	p.Blocks = append(p.Blocks, Block{
		Kind:           BlockSignature,
		ChairLabel:     "Il Presidente",
		SecretaryLabel: "Il Segretario",
		ChairName:      chair,
		SecretaryName:  secretary,
	})
}

// PlainText flattens the plan deterministically for human review.
// The assembler renders the same text content, modulo formatting-only
// markup, so a preview is faithful to the binary artifact.
func (p *ContentPlan) PlainText() string {
	var sb strings.Builder
	for i, b := range p.Blocks {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		switch b.Kind {
		case BlockHeading:
			sb.WriteString(b.Text)
		case BlockParagraph:
			sb.WriteString(b.Text)
		case BlockList:
			for j, item := range b.Items {
				if j > 0 {
					sb.WriteByte('\n')
				}
				sb.WriteString("- ")
				sb.WriteString(item)
			}
		case BlockSignature:
			sb.WriteString(b.ChairLabel)
			sb.WriteString("\t")
			sb.WriteString(b.SecretaryLabel)
			sb.WriteString("\n")
			sb.WriteString(b.ChairName)
			sb.WriteString("\t")
			sb.WriteString(b.SecretaryName)
		}
	}
	return sb.String()
}

// GenerationState tracks the lifecycle of one generation request.
// Transitions are strictly linear; re-collecting data after assembly
// requires a fresh request.
type GenerationState string

const (
	StateSelected       GenerationState = "selected"
	StateDataCollected  GenerationState = "data_collected"
	StateContentPlanned GenerationState = "content_planned"
	StateAssembled      GenerationState = "assembled"
)

// next maps each state to its single legal successor.
var nextState = map[GenerationState]GenerationState{
	StateSelected:       StateDataCollected,
	StateDataCollected:  StateContentPlanned,
	StateContentPlanned: StateAssembled,
}

// Advance moves the state forward to target, failing with ErrInvalidState
// on any transition that is not the single legal successor.
func (s GenerationState) Advance(target GenerationState) (GenerationState, error) {
	if nextState[s] != target {
		return s, fmt.Errorf("%w: %s -> %s", ErrInvalidState, s, target)
	}
	return target, nil
}
