package reporter

import (
	"fmt"
	"html"

	"glassdoor-scraper/internal/config"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Summary describes one finished run.
type Summary struct {
	Site       string
	Keyword    string
	Place      string
	Links      int
	Scraped    int
	Skipped    int
	OutputPath string
	Err        error
}

type TelegramReporter struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

func NewTelegramReporter(cfg *config.Config) (*TelegramReporter, error) {
	bot, err := tgbotapi.NewBotAPI(cfg.TelegramToken)
	if err != nil {
		return nil, fmt.Errorf("failed to init telegram bot: %w", err)
	}

	//turn this on in case of debug
	//bot.Debug = true

	return &TelegramReporter{
		bot:    bot,
		chatID: cfg.TelegramChatID,
	}, nil
}

func (t *TelegramReporter) SendMessage(text string) error {
	msg := tgbotapi.NewMessage(t.chatID, text)
	msg.ParseMode = "HTML" //use HTML for bold/italic
	_, err := t.bot.Send(msg)
	return err
}

func (t *TelegramReporter) SendSummary(s Summary) error {
	return t.SendMessage(FormatSummary(s))
}

func FormatSummary(s Summary) string {
	if s.Err != nil {
		return fmt.Sprintf(
			"⚠️ <b>%s scrape failed</b>\n"+
				"🔍 %s in %s\n"+
				"%s",
			html.EscapeString(s.Site),
			html.EscapeString(s.Keyword),
			html.EscapeString(s.Place),
			html.EscapeString(s.Err.Error()),
		)
	}
	return fmt.Sprintf(
		"✅ <b>%s scrape finished</b>\n"+
			"🔍 %s in %s\n"+
			"📦 %d links, %d saved, %d skipped\n"+
			"📁 %s",
		html.EscapeString(s.Site),
		html.EscapeString(s.Keyword),
		html.EscapeString(s.Place),
		s.Links, s.Scraped, s.Skipped,
		html.EscapeString(s.OutputPath),
	)
}
