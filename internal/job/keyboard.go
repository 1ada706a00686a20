package job

import tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

// Menu widths: specialities come in pairs, districts in triples
const (
	specialityRowWidth = 2
	districtRowWidth   = 3
)

// batchRows splits buttons into keyboard rows of at most perRow items
func batchRows(buttons []tgbotapi.InlineKeyboardButton, perRow int) [][]tgbotapi.InlineKeyboardButton {
	if perRow < 1 {
		perRow = 1
	}
	var rows [][]tgbotapi.InlineKeyboardButton
	for len(buttons) > 0 {
		n := perRow
		if n > len(buttons) {
			n = len(buttons)
		}
		rows = append(rows, buttons[:n])
		buttons = buttons[n:]
	}
	return rows
}

func welcomeKeyboard() tgbotapi.ReplyKeyboardMarkup {
	keyboard := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(ButtonFindDoctor)),
	)
	keyboard.ResizeKeyboard = true
	return keyboard
}
