package mq

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type loanEvent struct {
	Ticket string `json:"reader_ticket_number"`
	Book   string `json:"book_code"`
}

func TestEncode(t *testing.T) {
	body, err := encode(loanEvent{Ticket: "R001", Book: "<B001>"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"reader_ticket_number":"R001","book_code":"<B001>"}`, string(body))
	assert.Contains(t, string(body), "<B001>")
}

func TestEncode_Unsupported(t *testing.T) {
	_, err := encode(make(chan int))
	assert.Error(t, err)
}

// amqpURL 需要真实RabbitMQ，未设置FLATSTORE_TEST_AMQP_URL时跳过
func amqpURL(t *testing.T) string {
	t.Helper()
	url := os.Getenv("FLATSTORE_TEST_AMQP_URL")
	if url == "" {
		t.Skip("FLATSTORE_TEST_AMQP_URL未设置，跳过RabbitMQ测试")
	}
	return url
}

func TestPubSub(t *testing.T) {
	url := amqpURL(t)
	log := zap.NewNop()
	const exchange = "flatstore.test.events"

	consumer, err := NewConsumer(url, exchange, "", []string{"loan.*"}, log)
	require.NoError(t, err)
	defer consumer.Close()

	publisher, err := NewPublisher(url, exchange, log)
	require.NoError(t, err)
	defer publisher.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	require.NoError(t, publisher.Publish(ctx, "order.created", map[string]int{"orderId": 1}))
	require.NoError(t, publisher.Publish(ctx, "loan.borrowed", loanEvent{Ticket: "R001", Book: "B001"}))

	received := make(chan string, 1)
	go func() {
		_ = consumer.Consume(ctx, func(routingKey string, body []byte) error {
			received <- routingKey + " " + string(body)
			cancel()
			return nil
		})
	}()

	select {
	case msg := <-received:
		assert.Equal(t, `loan.borrowed {"reader_ticket_number":"R001","book_code":"B001"}`, msg)
	case <-time.After(5 * time.Second):
		t.Fatal("超时未收到消息")
	}
}
