package app

import (
	"errors"
	"log/slog"
	"strings"

	"go.uber.org/fx"

	"github.com/joshuarp/settlement-engine/internal/shared/config"
	"github.com/joshuarp/settlement-engine/internal/shared/publisher"
)

func provideLedgerPublisher(lifecycle fx.Lifecycle, cfg config.ConfigProvider, logger *slog.Logger) (publisher.Publisher, error) {
	brokers := splitList(cfg.GetString("kafka.brokers"))
	if len(brokers) == 0 {
		return nil, errors.New("app: kafka.brokers is required for the ledger credit outbox")
	}

	topic := strings.TrimSpace(cfg.GetString("kafka.ledger_credit_topic"))
	if topic == "" {
		topic = "ledger.credit.requested"
	}

	kafkaPublisher, err := publisher.NewKafkaPublisher(publisher.KafkaOptions{
		Brokers:      brokers,
		Topic:        topic,
		MaxAttempts:  cfg.GetInt("kafka.max_attempts"),
		BatchTimeout: cfg.GetDuration("kafka.batch_timeout"),
		WriteTimeout: cfg.GetDuration("kafka.write_timeout"),
	}, logger)
	if err != nil {
		return nil, err
	}

	lifecycle.Append(fx.StopHook(kafkaPublisher.Close))
	return kafkaPublisher, nil
}

func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
