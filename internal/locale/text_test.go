package locale

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveText(t *testing.T) {
	feedback := Texts(map[string]string{"en-US": "Good", "pt-BR": "Bom"})

	tests := []struct {
		name      string
		text      LocalizedText
		requested string
		want      string
	}{
		{name: "正常系: 要求ロケールが存在", text: feedback, requested: "pt-BR", want: "Bom"},
		{name: "正常系: 要求ロケールを正規化して一致", text: feedback, requested: "pt-br", want: "Bom"},
		{name: "フォールバック: 未知のロケール", text: feedback, requested: "ja-JP", want: "Good"},
		{name: "フォールバック: ロケール未指定", text: feedback, requested: "", want: "Good"},
		{name: "フォールバック: 解釈できないロケール", text: feedback, requested: "%%%", want: "Good"},
		{name: "フォールバック: 空文字は未設定扱い", text: Texts(map[string]string{"pt-BR": "", "en-US": "Good"}), requested: "pt-BR", want: "Good"},
		{name: "placeholder: デフォルトロケールも無い", text: Texts(map[string]string{"fr-FR": "Bien"}), requested: "pt-BR", want: "-"},
		{name: "placeholder: nil マップ", text: LocalizedText{}, requested: "pt-BR", want: "-"},
		{name: "共通文字列はロケールに依らない", text: Text("I am happy"), requested: "pt-BR", want: "I am happy"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveText(tt.text, tt.requested, CanonicalDefault, "-")
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLocalizedText_UnmarshalJSON(t *testing.T) {
	var payload struct {
		A LocalizedText `json:"a"`
		B LocalizedText `json:"b"`
		C LocalizedText `json:"c"`
		D LocalizedText `json:"d"`
	}
	err := json.Unmarshal([]byte(`{"a":"plain","b":{"en-US":"Hello","pt-BR":"Olá","x":null},"c":null}`), &payload)
	require.NoError(t, err)

	assert.Equal(t, "plain", payload.A.Plain)
	assert.Equal(t, map[string]string{"en-US": "Hello", "pt-BR": "Olá"}, payload.B.ByLocale)
	assert.True(t, payload.C.IsEmpty())
	assert.True(t, payload.D.IsEmpty())

	var bad LocalizedText
	assert.Error(t, json.Unmarshal([]byte(`42`), &bad))
}

func TestNegotiate(t *testing.T) {
	assert.Equal(t, "en-US", Negotiate("en-GB,en;q=0.8", StudentDefault))
	assert.Equal(t, "pt-BR", Negotiate("pt-BR,pt;q=0.9", CanonicalDefault))
	assert.Equal(t, StudentDefault, Negotiate("", StudentDefault))
	assert.Equal(t, StudentDefault, Negotiate("ja-JP", StudentDefault))
}

func TestMessage(t *testing.T) {
	assert.Equal(t, "Correct!", Message(MsgCorrect, "en-US"))
	assert.Equal(t, "Correto!", Message(MsgCorrect, "ja-JP"))
	assert.Equal(t, "unknown.key", Message(MessageKey("unknown.key"), "en-US"))
}

func TestLocalizedText_NonCanonicalKeys(t *testing.T) {
	t.Run("正常系: アンダースコア区切りのキーも要求ロケールに一致", func(t *testing.T) {
		var text LocalizedText
		require.NoError(t, json.Unmarshal([]byte(`{"en_US":"Well done","pt_BR":"Muito bem"}`), &text))

		assert.Equal(t, "Muito bem", ResolveText(text, "pt-BR", CanonicalDefault, "-"))
		assert.Equal(t, "Well done", ResolveText(text, "ja-JP", CanonicalDefault, "-"))
	})

	t.Run("正常系: 正規形のキーを優先", func(t *testing.T) {
		var text LocalizedText
		require.NoError(t, json.Unmarshal([]byte(`{"pt-BR":"Certo","pt_br":"Outro"}`), &text))
		assert.Equal(t, "Certo", ResolveText(text, "pt-BR", CanonicalDefault, "-"))
	})

	t.Run("正常系: Texts も正規化し、元のマップは変えない", func(t *testing.T) {
		src := map[string]string{"pt_BR": "Bom"}
		text := Texts(src)

		assert.Equal(t, "Bom", ResolveText(text, "pt-BR", CanonicalDefault, "-"))
		assert.Equal(t, map[string]string{"pt_BR": "Bom"}, src)
	})
}
