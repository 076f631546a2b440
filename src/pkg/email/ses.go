package email

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
)

// sesTransport sends the raw MIME message through the SES v2 API.
type sesTransport struct {
	region string
}

func (t sesTransport) Deliver(ctx context.Context, message Message) (id string, err error) {
	raw, err := BuildMIME(message, time.Now())
	if err != nil {
		return "", fmt.Errorf("build mime: %w", err)
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(t.region))
	if err != nil {
		return "", fmt.Errorf("load aws config: %w", err)
	}

	client := sesv2.NewFromConfig(awsCfg)
	output, err := client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(message.Sender),
		Destination: &types.Destination{
			ToAddresses: message.Recipients,
			CcAddresses: message.CC,
		},
		Content: &types.EmailContent{
			Raw: &types.RawMessage{Data: raw},
		},
	})
	if err != nil {
		return "", fmt.Errorf("ses send: %w", err)
	}

	return aws.ToString(output.MessageId), nil
}
