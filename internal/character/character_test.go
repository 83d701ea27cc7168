package character

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestID_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    ID
		wantErr bool
	}{
		{name: "string id", input: `"abc-1"`, want: "abc-1"},
		{name: "integer id", input: `1`, want: "1"},
		{name: "large integer keeps literal text", input: `12345678901234567890`, want: "12345678901234567890"},
		{name: "numeric string", input: `"42"`, want: "42"},
		{name: "null id", input: `null`, want: ""},
		{name: "boolean rejected", input: `true`, wantErr: true},
		{name: "object rejected", input: `{"id":1}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var id ID
			err := json.Unmarshal([]byte(tt.input), &id)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, id)
		})
	}
}

func TestText_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Text
		wantErr bool
	}{
		{name: "string", input: `"13"`, want: "13"},
		{name: "integer", input: `13`, want: "13"},
		{name: "decimal keeps literal text", input: `1.50`, want: "1.50"},
		{name: "boolean", input: `false`, want: "false"},
		{name: "null", input: `null`, want: ""},
		{name: "array rejected", input: `[13]`, wantErr: true},
		{name: "object rejected", input: `{"years":13}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var text Text
			err := json.Unmarshal([]byte(tt.input), &text)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidText)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, text)
		})
	}
}

func TestDetail_NumericDisplayFields(t *testing.T) {
	var d Detail
	body := `{"id":1,"name":"Tanjiro","img":"u","age":13,"race":"Human","gender":null,"description":"Kind","quote":true}`
	require.NoError(t, json.Unmarshal([]byte(body), &d))

	assert.Equal(t, Detail{
		Summary:     Summary{ID: "1", Name: "Tanjiro", Img: "u"},
		Age:         "13",
		Race:        "Human",
		Description: "Kind",
		Quote:       "true",
	}, d)
	assert.Equal(t, ThemeHuman, d.Theme())
}

func TestDetail_InvalidFieldsRejected(t *testing.T) {
	var d Detail
	require.ErrorIs(t, json.Unmarshal([]byte(`{"id":1,"age":{"years":13}}`), &d), ErrInvalidText)
	require.ErrorIs(t, json.Unmarshal([]byte(`{"id":true}`), &d), ErrInvalidID)
}

func TestThemes(t *testing.T) {
	assert.Equal(t, []Theme{ThemeHuman, ThemeDemon}, Themes())
}

func TestSummary_NumericAndStringIDsDecodeAlike(t *testing.T) {
	var numeric, text Summary
	require.NoError(t, json.Unmarshal([]byte(`{"id":1,"name":"Tanjiro","img":"u"}`), &numeric))
	require.NoError(t, json.Unmarshal([]byte(`{"id":"1","name":"Tanjiro","img":"u"}`), &text))

	assert.Equal(t, text, numeric)
	assert.Equal(t, Summary{ID: "1", Name: "Tanjiro", Img: "u"}, numeric)
}

func TestDetail_DecodesEmbeddedSummary(t *testing.T) {
	body := `{"id":3,"name":"Muzan Kibutsuji","img":"m.png","age":"1000+","race":"Demon",` +
		`"gender":"Male","description":"Progenitor","quote":"..."}`

	var d Detail
	require.NoError(t, json.Unmarshal([]byte(body), &d))

	assert.Equal(t, ID("3"), d.ID)
	assert.Equal(t, "Muzan Kibutsuji", d.Name)
	assert.Equal(t, "m.png", d.Img)
	assert.Equal(t, "Demon", d.Race)
	assert.Equal(t, ThemeDemon, d.Theme())
}

func TestSelectTheme(t *testing.T) {
	tests := []struct {
		race string
		want Theme
	}{
		{race: "Demon", want: ThemeDemon},
		{race: "demon", want: ThemeHuman},
		{race: "DEMON", want: ThemeHuman},
		{race: " Demon", want: ThemeHuman},
		{race: "Human", want: ThemeHuman},
		{race: "Half-Demon", want: ThemeHuman},
		{race: "", want: ThemeHuman},
	}

	for _, tt := range tests {
		t.Run(tt.race, func(t *testing.T) {
			assert.Equal(t, tt.want, SelectTheme(tt.race))
		})
	}
}
