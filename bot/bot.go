package bot

import (
	"context"
	"errors"

	tgbotapi "gopkg.in/telegram-bot-api.v4"

	sdk "github.com/asadbekGo/sky-price-bot"
	"github.com/asadbekGo/sky-price-bot/tools/amadeus"
	"github.com/asadbekGo/sky-price-bot/tools/ets"
)

const (
	usageReply        = "❌ Please use format: `Tashkent to Moscow on 2025-08-25`"
	noFlightsReply    = "⚠️ No flights found."
	genericErrorReply = "❌ Error occurred, please try again later."
)

type Bot struct {
	api     *tgbotapi.BotAPI
	cfg     *sdk.Config
	logger  *sdk.Logger
	flights *amadeus.Client
}

func New(cfg *sdk.Config, logger *sdk.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		return nil, err
	}

	return &Bot{
		api:     api,
		cfg:     cfg,
		logger:  logger,
		flights: amadeus.NewClient(cfg, logger),
	}, nil
}

// Run polls for updates until the process is killed. Each message is handled
// sequentially, one upstream call chain at a time.
func (b *Bot) Run() error {
	update := tgbotapi.NewUpdate(0)
	update.Timeout = 60

	updates, err := b.api.GetUpdatesChan(update)
	if err != nil {
		return err
	}

	b.logger.InfoLog.Sprint("sky price bot is running as @" + b.api.Self.UserName)

	for update := range updates {
		if update.Message == nil || update.Message.Text == "" {
			continue
		}
		b.handleMessage(update.Message)
	}

	return nil
}

// handleMessage is the catch-all boundary: whatever goes wrong while building
// a reply, the user gets a generic failure and the loop keeps running.
func (b *Bot) handleMessage(message *tgbotapi.Message) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.ErrorLog.Sprint("recovered while handling message: ", r)
			b.reply(message.Chat.ID, genericErrorReply)
		}
	}()

	b.reply(message.Chat.ID, b.buildReply(message.Text))
}

func (b *Bot) buildReply(text string) string {
	origin, destination, date, ok := ParseQuery(text)
	if !ok {
		return usageReply
	}

	if b.cfg.Provider == "ets" {
		return b.buildEtsReply(origin, destination, date)
	}

	criteria := amadeus.SearchCriteria{
		Origin:      AirportCode(origin),
		Destination: AirportCode(destination),
		Date:        date,
		Adults:      b.cfg.Adults,
		Currency:    b.cfg.Currency,
		MaxResults:  b.cfg.MaxResults,
	}

	ctx := context.Background()

	if b.cfg.CarrierFilter != "" {
		groups, err := b.flights.SearchGrouped(ctx, criteria, b.cfg.CarrierFilter)
		if err != nil {
			return replyForError(err)
		}
		if len(groups) == 0 {
			return noFlightsReply
		}
		return FormatGroups(origin, destination, date, groups)
	}

	offers, err := b.flights.SearchConfirmed(ctx, criteria)
	if err != nil {
		return replyForError(err)
	}
	if len(offers) == 0 {
		return noFlightsReply
	}

	return FormatOffers(origin, destination, date, offers)
}

func (b *Bot) buildEtsReply(origin, destination, date string) string {
	response, errorResponse := ets.GetOffers(ets.ETSRequest{
		BaseURL:   b.cfg.EtsBaseURL,
		Cookie:    b.cfg.EtsCookie,
		NextToken: b.cfg.EtsNextToken,
		Logger:    b.logger,
	})
	if errorResponse.ErrorMessage != "" {
		return "❌ " + errorResponse.ClientErrorMessage
	}
	if len(response.Data) == 0 {
		return noFlightsReply
	}

	return FormatEtsOffers(origin, destination, date, response)
}

func replyForError(err error) string {
	if errors.Is(err, amadeus.ErrUpstream) {
		return noFlightsReply
	}
	return genericErrorReply
}

func (b *Bot) reply(chatID int64, text string) {
	if _, err := b.api.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		b.logger.ErrorLog.Sprint("failed to send reply: " + err.Error())
	}
}
