package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	en := language.English
	message.SetString(en, Problems, "Problems")
	message.SetString(en, Answers, "Answers")
	message.SetString(en, Problem, "Problem %d")

	ru := language.Russian
	message.SetString(ru, Problems, "Задачи")
	message.SetString(ru, Answers, "Ответы")
	message.SetString(ru, Problem, "Задача %d")
}
