package email

import (
	"context"
	"strings"
)

// SendWelcomeEmail greets a newly registered teslo user.
func (c *Client) SendWelcomeEmail(ctx context.Context, to, fullName string) error {
	data := map[string]string{
		"UserFirstName": firstName(fullName),
		"UserEmail":     to,
	}

	return c.SendEmail(ctx, to, "Welcome to Teslo Shop!", TemplateWelcome, data)
}

func firstName(fullName string) string {
	fields := strings.Fields(fullName)
	if len(fields) == 0 {
		return "there"
	}
	return fields[0]
}
