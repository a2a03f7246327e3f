package pricefeed

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// WSConfig configures the push-price client.
type WSConfig struct {
	URL               string
	Symbols           []string
	ReconnectInterval time.Duration
	// StaleAfter bounds how old a quote may be before Spot refuses to
	// serve it. Zero disables the check.
	StaleAfter time.Duration
}

// WS consumes a push-price websocket feed and serves the latest quote
// per symbol. It reconnects with a fixed backoff until its context is
// cancelled.
type WS struct {
	cfg    WSConfig
	log    *zap.Logger
	store  *Static
	cancel context.CancelFunc
	done   chan struct{}
}

// priceMessage is the feed's wire format: price as a decimal string plus
// a unix-seconds publish time.
type priceMessage struct {
	Symbol      string `json:"symbol"`
	Price       string `json:"price"`
	PublishTime int64  `json:"publish_time"`
}

type subscribeMessage struct {
	Type    string   `json:"type"`
	Symbols []string `json:"symbols"`
}

func NewWS(cfg WSConfig, log *zap.Logger) (*WS, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("pricefeed: url is required")
	}
	if cfg.ReconnectInterval <= 0 {
		cfg.ReconnectInterval = 5 * time.Second
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &WS{
		cfg:   cfg,
		log:   log,
		store: NewStatic(),
		done:  make(chan struct{}),
	}, nil
}

// Start begins consuming the feed in the background.
func (w *WS) Start(ctx context.Context) {
	ctx, w.cancel = context.WithCancel(ctx)
	go w.run(ctx)
}

// Close stops the feed and waits for the read loop to exit.
func (w *WS) Close() error {
	if w.cancel != nil {
		w.cancel()
		<-w.done
	}
	return nil
}

// Spot returns the latest pushed quote for symbol. A quote older than
// StaleAfter is treated as missing.
func (w *WS) Spot(ctx context.Context, symbol string) (Quote, error) {
	q, err := w.store.Spot(ctx, symbol)
	if err != nil {
		return Quote{}, err
	}
	if w.cfg.StaleAfter > 0 && time.Since(q.Time) > w.cfg.StaleAfter {
		return Quote{}, fmt.Errorf("%s: quote stale since %s: %w", symbol, q.Time.Format(time.RFC3339), ErrNoQuote)
	}
	return q, nil
}

func (w *WS) run(ctx context.Context) {
	defer close(w.done)

	for {
		if err := w.consume(ctx); err != nil && ctx.Err() == nil {
			w.log.Warn("price feed disconnected",
				zap.String("url", w.cfg.URL),
				zap.Duration("retry_in", w.cfg.ReconnectInterval),
				zap.Error(err))
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(w.cfg.ReconnectInterval):
		}
	}
}

func (w *WS) consume(ctx context.Context) error {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, w.cfg.URL, nil)
	if err != nil {
		return fmt.Errorf("dial: %w", err)
	}
	defer conn.Close()

	if len(w.cfg.Symbols) > 0 {
		sub := subscribeMessage{Type: "subscribe", Symbols: w.cfg.Symbols}
		if err := conn.WriteJSON(sub); err != nil {
			return fmt.Errorf("subscribe: %w", err)
		}
	}
	w.log.Info("price feed connected",
		zap.String("url", w.cfg.URL),
		zap.Strings("symbols", w.cfg.Symbols))

	// Unblock ReadMessage when the context is cancelled.
	readerDone := make(chan struct{})
	defer close(readerDone)
	go func() {
		select {
		case <-ctx.Done():
			conn.Close()
		case <-readerDone:
		}
	}()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return fmt.Errorf("read: %w", err)
		}
		q, err := parsePriceMessage(data)
		if err != nil {
			w.log.Debug("skipping feed message", zap.Error(err))
			continue
		}
		w.store.Set(q)
	}
}

func parsePriceMessage(data []byte) (Quote, error) {
	var msg priceMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return Quote{}, fmt.Errorf("decode price message: %w", err)
	}
	if msg.Symbol == "" {
		return Quote{}, fmt.Errorf("price message missing symbol")
	}
	px, err := strconv.ParseFloat(msg.Price, 64)
	if err != nil {
		return Quote{}, fmt.Errorf("price message %s: bad price %q", msg.Symbol, msg.Price)
	}
	return Quote{
		Symbol: msg.Symbol,
		Price:  px,
		Time:   time.Unix(msg.PublishTime, 0).UTC(),
	}, nil
}
