package webutil

import (
	"log"
	"reflect"
	"strings"

	"github.com/go-playground/locales/ja" // 日本語ロケール
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	ja_translations "github.com/go-playground/validator/v10/translations/ja" // 日本語翻訳
)

// Validator はアプリケーション全体で共有されるバリデータインスタンスです。
var Validator *validator.Validate

// Trans はエラーメッセージを翻訳するためのトランスレータです。
var Trans ut.Translator

var fieldNameTranslations = map[string]string{
	"name":             "名前",
	"email":            "メールアドレス",
	"password":         "パスワード",
	"points":           "ポイント",
	"reason":           "理由",
	"game_id":          "ゲームID",
	"score":            "スコア",
	"duration_minutes": "プレイ時間",
	"xp_earned":        "獲得経験値",
	"base_xp":          "基本経験値",
	"style":            "スタイル",
	"seed":             "シード",
}

func init() {
	// バリデータのインスタンスを生成
	Validator = validator.New()

	// JSONタグからフィールド名を取得するように設定
	Validator.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// --- ここからが日本語化の処理 ---

	// 日本語のロケールとトランスレータを設定
	japanese := ja.New()
	uni := ut.New(japanese, japanese)
	var found bool
	Trans, found = uni.GetTranslator("ja")
	if !found {
		log.Fatal("translator not found")
	}

	// バリデータに日本語の翻訳を登録
	if err := ja_translations.RegisterDefaultTranslations(Validator, Trans); err != nil {
		log.Fatal(err)
	}

	// 個別のエラーメッセージを上書き
	registerTranslation := func(tag string, msg string) {
		Validator.RegisterTranslation(tag, Trans, func(ut ut.Translator) error {
			return ut.Add(tag, msg, true)
		}, func(ut ut.Translator, fe validator.FieldError) string {
			t, _ := ut.T(tag, fieldLabel(fe))
			return t
		})
	}

	registerTranslation("required", "{0}は必須項目です。")
	registerTranslation("email", "{0}は有効なメールアドレス形式ではありません。")
	// min/max は文字列なら文字数、数値なら値の範囲として扱う
	registerParamTranslation("min", "{0}は{1}文字以上で入力してください。", "{0}は{1}以上で入力してください。")
	registerParamTranslation("max", "{0}は{1}文字以下で入力してください。", "{0}は{1}以下で入力してください。")
	registerParamTranslation("gt", "{0}は{1}文字より長く入力してください。", "{0}は{1}より大きい値を入力してください。")
	registerParamTranslation("gte", "{0}は{1}文字以上で入力してください。", "{0}は{1}以上で入力してください。")
	registerParamTranslation("lte", "{0}は{1}文字以下で入力してください。", "{0}は{1}以下で入力してください。")
}

// fieldLabel は jsonタグ名に対応する日本語のフィールド名を返します (なければタグ名のまま)
func fieldLabel(fe validator.FieldError) string {
	if label, ok := fieldNameTranslations[fe.Field()]; ok {
		return label
	}
	return fe.Field()
}

func registerParamTranslation(tag, stringMsg, numberMsg string) {
	stringKey := tag + "-string"
	numberKey := tag + "-number"
	Validator.RegisterTranslation(tag, Trans, func(ut ut.Translator) error {
		if err := ut.Add(stringKey, stringMsg, true); err != nil {
			return err
		}
		return ut.Add(numberKey, numberMsg, true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		key := numberKey
		if fe.Kind() == reflect.String {
			key = stringKey
		}
		t, _ := ut.T(key, fieldLabel(fe), fe.Param())
		return t
	})
}
