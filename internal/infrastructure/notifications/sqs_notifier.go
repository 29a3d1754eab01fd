package notifications

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"os"
	"strings"

	"cobranca_service/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
)

var ErrMissingQueueURL = errors.New("missing PUSH_QUEUE_URL")

// pushMessage is the envelope placed on the queue. The downstream fan-out
// worker resolves device tokens into platform pushes.
type pushMessage struct {
	Recipients []string       `json:"recipients"`
	Excluding  []string       `json:"excluding,omitempty"`
	Payload    map[string]any `json:"payload"`
}

// SQSNotifier publishes push-notification requests to an SQS queue. Delivery
// is fire-and-forget from the caller's perspective: a publish failure is the
// caller's to log, never to act on.
type SQSNotifier struct {
	client   *sqs.Client
	queueURL string
}

var _ interfaces.IPushNotifier = (*SQSNotifier)(nil)

func NewSQSNotifier(cfg aws.Config) (*SQSNotifier, error) {
	queueURL := strings.TrimSpace(os.Getenv("PUSH_QUEUE_URL"))
	if queueURL == "" {
		log.Printf("[notify][sqs] missing PUSH_QUEUE_URL")
		return nil, ErrMissingQueueURL
	}

	return &SQSNotifier{
		client:   sqs.NewFromConfig(cfg),
		queueURL: queueURL,
	}, nil
}

func (n *SQSNotifier) Notify(ctx context.Context, recipients []string, excluding []string, payload map[string]any) error {
	body, err := json.Marshal(pushMessage{
		Recipients: recipients,
		Excluding:  excluding,
		Payload:    payload,
	})
	if err != nil {
		return err
	}

	_, err = n.client.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    aws.String(n.queueURL),
		MessageBody: aws.String(string(body)),
	})
	if err != nil {
		log.Printf("[notify][sqs] publish failed recipients=%d err=%v", len(recipients), err)
		return err
	}
	log.Printf("[notify][sqs] publish success recipients=%d", len(recipients))
	return nil
}
