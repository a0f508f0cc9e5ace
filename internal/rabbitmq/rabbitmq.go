package rabbitmq

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cutekitek/judge-submit/internal/mappers"
	"github.com/cutekitek/judge-submit/internal/repository/models"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	amqp "github.com/rabbitmq/amqp091-go"
)

type VerdictPublisherConfig struct {
	Login    string
	Password string
	Host     string
	Port     int
	Queue    string
}

// channel is the part of *amqp.Channel the publisher uses.
type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// VerdictPublisher sends every final verdict to a queue as JSON.
type VerdictPublisher struct {
	cfg  VerdictPublisherConfig
	conn *amqp.Connection
	ch   channel
}

func NewVerdictPublisher(cfg VerdictPublisherConfig) (*VerdictPublisher, error) {
	p := &VerdictPublisher{cfg: cfg}
	if err := p.connect(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *VerdictPublisher) connect() error {
	url := fmt.Sprintf("amqp://%s:%s@%s:%d", p.cfg.Login, p.cfg.Password, p.cfg.Host, p.cfg.Port)
	conn, err := amqp.Dial(url)
	if err != nil {
		return errors.Wrap(err, "failed to connect to rabbitmq")
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return errors.Wrap(err, "failed to open channel")
	}
	if _, err := ch.QueueDeclare(p.cfg.Queue, false, false, false, false, nil); err != nil {
		conn.Close()
		return errors.Wrapf(err, "failed to declare queue %s", p.cfg.Queue)
	}
	p.conn = conn
	p.ch = ch
	return nil
}

func (p *VerdictPublisher) Publish(ctx context.Context, result *models.SubmissionResult) error {
	msg, err := newMessage(result)
	if err != nil {
		return err
	}
	if err := p.ch.PublishWithContext(ctx, "", p.cfg.Queue, false, false, msg); err != nil {
		return errors.Wrap(err, "failed to publish verdict")
	}
	slog.Debug("verdict published", "queue", p.cfg.Queue, "message_id", msg.MessageId)
	return nil
}

func (p *VerdictPublisher) Close() {
	if p.ch != nil {
		p.ch.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
}

func newMessage(result *models.SubmissionResult) (amqp.Publishing, error) {
	body, err := mappers.ResultToMessage(result)
	if err != nil {
		return amqp.Publishing{}, errors.Wrap(err, "failed to encode verdict")
	}
	return amqp.Publishing{
		ContentType: "application/json",
		MessageId:   uuid.NewString(),
		Timestamp:   time.Now(),
		Type:        string(result.State),
		Body:        body,
	}, nil
}
