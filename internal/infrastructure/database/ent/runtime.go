// Code generated by ent, DO NOT EDIT.

package ent

import (
	"github.com/eslsoft/lingobot/internal/infrastructure/database/ent/page"
	"github.com/eslsoft/lingobot/internal/infrastructure/database/ent/sentence"
	"github.com/eslsoft/lingobot/internal/infrastructure/database/ent/word"
	"github.com/eslsoft/lingobot/internal/infrastructure/database/entschema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	pageFields := entschema.Page{}.Fields()
	_ = pageFields
	// pageDescMessageRef is the schema descriptor for message_ref field.
	pageDescMessageRef := pageFields[2].Descriptor()
	// page.DefaultMessageRef holds the default value on creation for the message_ref field.
	page.DefaultMessageRef = pageDescMessageRef.Default.(int64)
	// pageDescName is the schema descriptor for name field.
	pageDescName := pageFields[3].Descriptor()
	// page.DefaultName holds the default value on creation for the name field.
	page.DefaultName = pageDescName.Default.(string)
	sentenceFields := entschema.Sentence{}.Fields()
	_ = sentenceFields
	// sentenceDescText is the schema descriptor for text field.
	sentenceDescText := sentenceFields[0].Descriptor()
	// sentence.TextValidator is a validator for the "text" field. It is called by the builders before save.
	sentence.TextValidator = sentenceDescText.Validators[0].(func(string) error)
	// sentenceDescTranslation is the schema descriptor for translation field.
	sentenceDescTranslation := sentenceFields[1].Descriptor()
	// sentence.TranslationValidator is a validator for the "translation" field. It is called by the builders before save.
	sentence.TranslationValidator = sentenceDescTranslation.Validators[0].(func(string) error)
	// sentenceDescLesson is the schema descriptor for lesson field.
	sentenceDescLesson := sentenceFields[2].Descriptor()
	// sentence.DefaultLesson holds the default value on creation for the lesson field.
	sentence.DefaultLesson = sentenceDescLesson.Default.(int32)
	wordFields := entschema.Word{}.Fields()
	_ = wordFields
	// wordDescEnglish is the schema descriptor for english field.
	wordDescEnglish := wordFields[0].Descriptor()
	// word.EnglishValidator is a validator for the "english" field. It is called by the builders before save.
	word.EnglishValidator = wordDescEnglish.Validators[0].(func(string) error)
	// wordDescRussian is the schema descriptor for russian field.
	wordDescRussian := wordFields[1].Descriptor()
	// word.RussianValidator is a validator for the "russian" field. It is called by the builders before save.
	word.RussianValidator = wordDescRussian.Validators[0].(func(string) error)
	// wordDescAlternates is the schema descriptor for alternates field.
	wordDescAlternates := wordFields[2].Descriptor()
	// word.DefaultAlternates holds the default value on creation for the alternates field.
	word.DefaultAlternates = wordDescAlternates.Default.([]string)
	// wordDescLesson is the schema descriptor for lesson field.
	wordDescLesson := wordFields[3].Descriptor()
	// word.DefaultLesson holds the default value on creation for the lesson field.
	word.DefaultLesson = wordDescLesson.Default.(int32)
}
