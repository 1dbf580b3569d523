package n8n

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mkravets/contentangle-backend/internal/provider"
)

// The webhook has been observed terminating its workflows in three shapes for
// array-bearing responses:
//
//	(a) bare item array:        [{...}, {...}]
//	(b) wrapped inside array:   [{"angles": [{...}]}]
//	(c) wrapped object:         {"angles": [{...}]}
//
// unwrapItems normalizes all three into the item list. wrapperKey is the
// field holding the list in shapes (b)/(c); itemField is a field expected on
// every bare item, used to duck-type shape (a). Anything else is a hard
// ErrUnrecognizedShape, never an empty result. An empty item list is a valid
// outcome and distinct from a shape mismatch.
func unwrapItems(body []byte, wrapperKey, itemField string) ([]json.RawMessage, error) {
	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" {
		return nil, fmt.Errorf("n8n: empty body: %w", provider.ErrDecode)
	}

	switch trimmed[0] {
	case '[':
		var elems []json.RawMessage
		if err := json.Unmarshal(body, &elems); err != nil {
			return nil, fmt.Errorf("n8n: %w: %v", provider.ErrDecode, err)
		}
		if len(elems) == 0 {
			return []json.RawMessage{}, nil
		}

		var first map[string]json.RawMessage
		if err := json.Unmarshal(elems[0], &first); err != nil {
			return nil, fmt.Errorf("n8n: array of non-objects: %w", provider.ErrUnrecognizedShape)
		}

		if wrapped, ok := first[wrapperKey]; ok {
			items, err := asArray(wrapped)
			if err != nil {
				return nil, fmt.Errorf("n8n: %q is not an array: %w", wrapperKey, provider.ErrUnrecognizedShape)
			}
			return items, nil
		}

		if _, ok := first[itemField]; ok {
			return elems, nil
		}

		return nil, fmt.Errorf("n8n: array items lack %q and %q: %w", wrapperKey, itemField, provider.ErrUnrecognizedShape)

	case '{':
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(body, &obj); err != nil {
			return nil, fmt.Errorf("n8n: %w: %v", provider.ErrDecode, err)
		}

		wrapped, ok := obj[wrapperKey]
		if !ok {
			return nil, fmt.Errorf("n8n: object lacks %q: %w", wrapperKey, provider.ErrUnrecognizedShape)
		}
		items, err := asArray(wrapped)
		if err != nil {
			return nil, fmt.Errorf("n8n: %q is not an array: %w", wrapperKey, provider.ErrUnrecognizedShape)
		}
		return items, nil

	default:
		return nil, fmt.Errorf("n8n: neither array nor object: %w", provider.ErrUnrecognizedShape)
	}
}

func asArray(raw json.RawMessage) ([]json.RawMessage, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, err
	}
	return items, nil
}

type wireAngle struct {
	Header      string `json:"header"`
	Description string `json:"description"`
	Tonality    string `json:"tonality"`
	Objective   string `json:"objective"`
}

func decodeAngles(body []byte) ([]provider.AngleResult, error) {
	items, err := unwrapItems(body, "angles", "header")
	if err != nil {
		return nil, err
	}

	angles := make([]provider.AngleResult, 0, len(items))
	for _, item := range items {
		var a wireAngle
		if err := json.Unmarshal(item, &a); err != nil {
			return nil, fmt.Errorf("n8n: decode angle: %w", provider.ErrUnrecognizedShape)
		}
		if a.Header == "" {
			return nil, fmt.Errorf("n8n: angle missing header: %w", provider.ErrUnrecognizedShape)
		}
		angles = append(angles, provider.AngleResult(a))
	}

	return angles, nil
}

type wireIdea struct {
	Topic       string `json:"topic"`
	Description string `json:"description"`
	ImagePrompt string `json:"imagePrompt"`
}

func decodeIdeas(body []byte) ([]provider.IdeaResult, error) {
	items, err := unwrapItems(body, "ideas", "topic")
	if err != nil {
		return nil, err
	}

	ideas := make([]provider.IdeaResult, 0, len(items))
	for _, item := range items {
		var i wireIdea
		if err := json.Unmarshal(item, &i); err != nil {
			return nil, fmt.Errorf("n8n: decode idea: %w", provider.ErrUnrecognizedShape)
		}
		if i.Topic == "" {
			return nil, fmt.Errorf("n8n: idea missing topic: %w", provider.ErrUnrecognizedShape)
		}
		ideas = append(ideas, provider.IdeaResult(i))
	}

	return ideas, nil
}

type wireContent struct {
	Content  string `json:"content"`
	ImageURL string `json:"imageUrl"`
}

// decodeContent accepts either a {content, imageUrl} object or a one-element
// array holding it, and strips one redundant escaping layer from the text.
func decodeContent(body []byte) (*provider.ContentResult, error) {
	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" {
		return nil, fmt.Errorf("n8n: empty body: %w", provider.ErrDecode)
	}

	var wire wireContent
	switch trimmed[0] {
	case '[':
		var elems []wireContent
		if err := json.Unmarshal(body, &elems); err != nil {
			return nil, fmt.Errorf("n8n: %w: %v", provider.ErrDecode, err)
		}
		if len(elems) == 0 {
			return nil, fmt.Errorf("n8n: empty content array: %w", provider.ErrUnrecognizedShape)
		}
		wire = elems[0]
	case '{':
		if err := json.Unmarshal(body, &wire); err != nil {
			return nil, fmt.Errorf("n8n: %w: %v", provider.ErrDecode, err)
		}
	default:
		return nil, fmt.Errorf("n8n: neither array nor object: %w", provider.ErrUnrecognizedShape)
	}

	text := unescapeContent(wire.Content)
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("n8n: missing content field: %w", provider.ErrUnrecognizedShape)
	}

	return &provider.ContentResult{Content: text, ImageURL: wire.ImageURL}, nil
}

// unescapeContent strips exactly one layer of redundant quoting the workflow
// sometimes adds: a surrounding quote pair, escaped inner quotes and literal
// \n sequences.
func unescapeContent(s string) string {
	if len(s) >= 2 && strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`) {
		s = s[1 : len(s)-1]
	}
	s = strings.ReplaceAll(s, `\"`, `"`)
	s = strings.ReplaceAll(s, `\n`, "\n")
	return s
}

type wireAutofill struct {
	TargetAudience string `json:"targetAudience"`
	BrandTone      string `json:"brandTone"`
	KeyOffer       string `json:"keyOffer"`
}

// decodeAutofill accepts the canonical object or a one-element array wrapping it.
func decodeAutofill(body []byte) (*provider.AutofillResult, error) {
	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" {
		return nil, fmt.Errorf("n8n: empty body: %w", provider.ErrDecode)
	}

	var wire wireAutofill
	switch trimmed[0] {
	case '[':
		var elems []wireAutofill
		if err := json.Unmarshal(body, &elems); err != nil {
			return nil, fmt.Errorf("n8n: %w: %v", provider.ErrDecode, err)
		}
		if len(elems) == 0 {
			return nil, fmt.Errorf("n8n: empty autofill array: %w", provider.ErrUnrecognizedShape)
		}
		wire = elems[0]
	case '{':
		if err := json.Unmarshal(body, &wire); err != nil {
			return nil, fmt.Errorf("n8n: %w: %v", provider.ErrDecode, err)
		}
	default:
		return nil, fmt.Errorf("n8n: neither array nor object: %w", provider.ErrUnrecognizedShape)
	}

	if wire.TargetAudience == "" && wire.BrandTone == "" && wire.KeyOffer == "" {
		return nil, fmt.Errorf("n8n: autofill fields missing: %w", provider.ErrUnrecognizedShape)
	}

	return &provider.AutofillResult{
		TargetAudience: wire.TargetAudience,
		BrandTone:      wire.BrandTone,
		KeyOffer:       wire.KeyOffer,
	}, nil
}
