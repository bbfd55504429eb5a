package engine

// Commands are the keyboard labels the transport presents; a payload equal
// to one of these is an explicit command regardless of dialog state.
const (
	CmdStart      = "/start"
	CmdNext       = "Следующее слово"
	CmdAddWord    = "добавить слово ➕"
	CmdDeleteWord = "удалить слово 🔙"
	CmdStats      = "Статистика"
	CmdContinue   = "Продолжить изучение"
)

const (
	msgGreeting = `Привет 👋
Давай попрактикуемся в английском языке. Тренировки можешь проходить в удобном для себя темпе.

У тебя есть возможность использовать тренажёр, как конструктор, и собирать свою собственную базу для обучения. Для этого воспользуйся инструментами:
- добавить слово ➕,
- удалить слово 🔙.

Ну что, начнём ⬇️`

	msgRoundPrompt   = "Выбери перевод слова: 🇷🇺 %s"
	msgCorrect       = "Отлично! ❤️ %s -> %s"
	msgWrong         = "❌ Неправильно! Твой ответ: '%s'\n\nПравильный ответ: '%s' -> '%s'\n\nПопробуй еще раз! 💪"
	msgInvalidOption = "❌ Пожалуйста, выберите один из предложенных вариантов ответа!"

	msgNoWords          = "К сожалению, не удалось получить слово для изучения. Попробуйте добавить слово ➕"
	msgInsufficientPool = "Недостаточно слов для создания викторины. Попробуйте добавить больше слов."
	msgStorageError     = "Произошла ошибка. Попробуйте позже."

	msgEnglishPrompt   = "Введите английское слово:"
	msgEnglishTooShort = "Пожалуйста, введите корректное английское слово (минимум 2 символа)."
	msgRussianPrompt   = "Теперь введите перевод для слова '%s':"
	msgRussianTooShort = "Пожалуйста, введите корректный перевод (минимум 2 символа)."
	msgWordAdded       = "Слово '%s' успешно добавлено!\n\nТеперь у тебя %d персональных слов для изучения."
	msgWordAddedShort  = "Слово '%s' успешно добавлено!"
	msgAddFailed       = "Произошла ошибка при добавлении слова. Попробуйте позже."

	msgNothingToDelete = "У тебя пока нет персональных слов для удаления."
	msgDeletePrompt    = "Выбери слово для удаления (у тебя %d персональных слов):"
	msgWordDeleted     = "✅ Слово '%s' успешно удалено!\n\nОсталось персональных слов: %d"
	msgDeleteFailed    = "❌ Ошибка при удалении слова '%s'. Попробуйте еще раз."
	msgContinuePrompt  = "Что делаем дальше?"

	msgStatsTemplate = `Твоя статистика:

Персональных слов: %d
Общих слов: %d
Всего пользователей: %d
Всего персональных слов: %d

Совет: Добавляй новые слова для расширения словарного запаса!`
)
