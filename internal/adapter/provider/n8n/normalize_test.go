package n8n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkravets/contentangle-backend/internal/provider"
)

func TestDecodeIdeas_AllVariantsAgree(t *testing.T) {
	t.Parallel()

	want := []provider.IdeaResult{{Topic: "a", Description: "b", ImagePrompt: "c"}}

	variants := map[string]string{
		"bare array":     `[{"topic":"a","description":"b","imagePrompt":"c"}]`,
		"wrapped array":  `[{"ideas":[{"topic":"a","description":"b","imagePrompt":"c"}]}]`,
		"wrapped object": `{"ideas":[{"topic":"a","description":"b","imagePrompt":"c"}]}`,
	}

	for name, body := range variants {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := decodeIdeas([]byte(body))
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestDecodeIdeas_EmptyListIsNotAnError(t *testing.T) {
	t.Parallel()

	got, err := decodeIdeas([]byte(`{"ideas":[]}`))
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = decodeIdeas([]byte(`[]`))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestDecodeIdeas_UnrecognizedShape(t *testing.T) {
	t.Parallel()

	bodies := []string{
		`{"foo":123}`,
		`[{"foo":123}]`,
		`[1,2,3]`,
		`"just a string"`,
		`{"ideas":"not an array"}`,
		`[{"ideas":"not an array"}]`,
	}
	for _, body := range bodies {
		_, err := decodeIdeas([]byte(body))
		assert.ErrorIs(t, err, provider.ErrUnrecognizedShape, "body %s", body)
	}
}

func TestDecodeIdeas_BadJSONIsDecodeError(t *testing.T) {
	t.Parallel()

	_, err := decodeIdeas([]byte(`{"ideas": [`))
	assert.ErrorIs(t, err, provider.ErrDecode)
	assert.NotErrorIs(t, err, provider.ErrUnrecognizedShape)
}

func TestDecodeAngles_Variants(t *testing.T) {
	t.Parallel()

	want := []provider.AngleResult{{Header: "h", Description: "d", Tonality: "t", Objective: "o"}}
	item := `{"header":"h","description":"d","tonality":"t","objective":"o"}`

	for _, body := range []string{
		`[` + item + `]`,
		`[{"angles":[` + item + `]}]`,
		`{"angles":[` + item + `]}`,
	} {
		got, err := decodeAngles([]byte(body))
		require.NoError(t, err, "body %s", body)
		assert.Equal(t, want, got)
	}
}

func TestDecodeContent_ObjectAndArray(t *testing.T) {
	t.Parallel()

	want := &provider.ContentResult{Content: "hello world", ImageURL: "https://img.example/x.jpg"}

	got, err := decodeContent([]byte(`{"content":"hello world","imageUrl":"https://img.example/x.jpg"}`))
	require.NoError(t, err)
	assert.Equal(t, want, got)

	got, err = decodeContent([]byte(`[{"content":"hello world","imageUrl":"https://img.example/x.jpg"}]`))
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestDecodeContent_StripsOneEscapingLayer(t *testing.T) {
	t.Parallel()

	// The workflow occasionally double-encodes the text: a redundant quote
	// pair with escaped inner quotes and literal \n sequences.
	body := `{"content":"\"He said \\\"hi\\\".\\nNew line.\"","imageUrl":""}`

	got, err := decodeContent([]byte(body))
	require.NoError(t, err)
	assert.Equal(t, "He said \"hi\".\nNew line.", got.Content)
}

func TestDecodeContent_MissingContentIsHardFailure(t *testing.T) {
	t.Parallel()

	_, err := decodeContent([]byte(`{"imageUrl":"x"}`))
	assert.ErrorIs(t, err, provider.ErrUnrecognizedShape)

	_, err = decodeContent([]byte(`[]`))
	assert.ErrorIs(t, err, provider.ErrUnrecognizedShape)
}

func TestDecodeAutofill(t *testing.T) {
	t.Parallel()

	got, err := decodeAutofill([]byte(`{"targetAudience":"devs","brandTone":"dry","keyOffer":"speed"}`))
	require.NoError(t, err)
	assert.Equal(t, &provider.AutofillResult{TargetAudience: "devs", BrandTone: "dry", KeyOffer: "speed"}, got)

	_, err = decodeAutofill([]byte(`{"somethingElse":true}`))
	assert.ErrorIs(t, err, provider.ErrUnrecognizedShape)
}

func TestUnescapeContent_IsSingleLayer(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "plain", unescapeContent("plain"))
	assert.Equal(t, `a "b" c`, unescapeContent(`"a \"b\" c"`))
	assert.Equal(t, "line1\nline2", unescapeContent(`line1\nline2`))
	// A lone quote is not a wrapping pair.
	assert.Equal(t, `"`, unescapeContent(`"`))
}
