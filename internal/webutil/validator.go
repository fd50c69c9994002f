package webutil

import (
	"errors"
	"log"
	"reflect"
	"strings"

	"go_5_english_tutor/internal/model"

	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/pt_BR"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	pt_BR_translations "github.com/go-playground/validator/v10/translations/pt_BR"
)

// Validator はアプリケーション全体で共有されるバリデータインスタンスです。
var Validator *validator.Validate

// Trans はデフォルト (pt-BR) のトランスレータです。
var Trans ut.Translator

var uni *ut.UniversalTranslator

// fieldNames はロケールごとのフィールド表示名です (キーは json タグ名)
var fieldNames = map[string]map[string]string{
	"pt_BR": {
		"module_id": "ID do módulo",
		"action":    "ação",
		"value":     "valor",
		"token_id":  "ID do token",
		"type":      "tipo",
		"action_id": "ID da ação",
		"text":      "mensagem",
	},
	"en": {
		"module_id": "module id",
		"token_id":  "token id",
		"action_id": "action id",
	},
}

func init() {
	Validator = validator.New()

	// JSONタグからフィールド名を取得するように設定
	Validator.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	portuguese := pt_BR.New()
	english := en.New()
	uni = ut.New(portuguese, portuguese, english)

	ptTrans, found := uni.GetTranslator("pt_BR")
	if !found {
		log.Fatal("translator pt_BR not found")
	}
	if err := pt_BR_translations.RegisterDefaultTranslations(Validator, ptTrans); err != nil {
		log.Fatal(err)
	}
	enTrans, found := uni.GetTranslator("en")
	if !found {
		log.Fatal("translator en not found")
	}
	if err := en_translations.RegisterDefaultTranslations(Validator, enTrans); err != nil {
		log.Fatal(err)
	}
	Trans = ptTrans

	// required / required_if はフィールド表示名を使ったメッセージに差し替える
	registerRequired(ptTrans, "pt_BR", "{0} é obrigatório.")
	registerRequired(enTrans, "en", "{0} is required.")
}

func registerRequired(trans ut.Translator, key, msg string) {
	for _, tag := range []string{"required", "required_if"} {
		tag := tag
		Validator.RegisterTranslation(tag, trans, func(ut ut.Translator) error {
			return ut.Add(tag, msg, true)
		}, func(ut ut.Translator, fe validator.FieldError) string {
			t, _ := ut.T(tag, fieldName(key, fe.Field()))
			return t
		})
	}
}

// fieldName はフィールドの表示名を返します。無ければ json タグ名のままです。
func fieldName(key, field string) string {
	if name, ok := fieldNames[key][field]; ok {
		return name
	}
	return field
}

// Translator は表示ロケール ("pt-BR", "en-US" など) に合うトランスレータを返します。
// 対応していないロケールは pt-BR です。
func Translator(lang string) ut.Translator {
	tag := strings.ReplaceAll(lang, "-", "_")
	base := strings.SplitN(tag, "_", 2)[0]
	trans, _ := uni.FindTranslator(tag, base)
	if trans == nil {
		return Trans
	}
	return trans
}

// NewValidationError はバリデーションエラーの最初の1件を、表示ロケールに翻訳した AppError にします。
// バリデーションエラー以外はそのまま返します。
func NewValidationError(err error, lang string) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return err
	}
	firstErr := validationErrors[0]
	return model.NewAppError(
		"VALIDATION_ERROR",
		firstErr.Translate(Translator(lang)),
		firstErr.Field(),
		model.ErrInvalidInput,
	)
}
