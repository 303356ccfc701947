// Package client is a Go client for the signupd HTTP API.
package client

import (
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/go-resty/resty/v2"
	"github.com/mergington/signupd/pkg/signupd/webapi"
	"github.com/pkg/errors"
)

type Client struct {
	c *resty.Client
}

func NewClient(baseURL string) *Client {
	return &Client{c: resty.New().SetBaseURL(baseURL)}
}

// ErrorResponse is the body echo renders for a HTTPError.
type ErrorResponse struct {
	Message string `json:"message"`
}

func (c *Client) ListActivities() (map[string]webapi.ActivityDetails, error) {
	resp, err := c.c.R().Get("/activities")
	if err != nil {
		return nil, errors.Wrap(err, "unable to list activities")
	}

	if resp.IsError() {
		return nil, toErrorFromResponse(resp)
	}

	var activities map[string]webapi.ActivityDetails
	if err := json.Unmarshal(resp.Body(), &activities); err != nil {
		return nil, errors.Wrap(err, "unable to parse activities response")
	}

	return activities, nil
}

func (c *Client) Signup(activityName, email string) (string, error) {
	resp, err := c.c.R().
		SetQueryParam("email", email).
		Post("/activities/" + url.PathEscape(activityName) + "/signup")
	if err != nil {
		return "", errors.Wrapf(err, "unable to sign up %s for %s", email, activityName)
	}

	return messageFromResponse(resp)
}

func (c *Client) Unregister(activityName, email string) (string, error) {
	resp, err := c.c.R().
		SetQueryParam("email", email).
		Delete("/activities/" + url.PathEscape(activityName) + "/unregister")
	if err != nil {
		return "", errors.Wrapf(err, "unable to unregister %s from %s", email, activityName)
	}

	return messageFromResponse(resp)
}

func (c *Client) Reset() error {
	resp, err := c.c.R().Post("/api/reset")
	if err != nil {
		return errors.Wrap(err, "unable to reset activities")
	}

	if resp.IsError() {
		return toErrorFromResponse(resp)
	}

	return nil
}

func messageFromResponse(resp *resty.Response) (string, error) {
	if resp.IsError() {
		return "", toErrorFromResponse(resp)
	}

	var msg webapi.MessageResponse
	if err := json.Unmarshal(resp.Body(), &msg); err != nil {
		return "", errors.Wrap(err, "unable to parse response")
	}

	return msg.Message, nil
}

func toErrorFromResponse(resp *resty.Response) error {
	var errorResponse ErrorResponse
	if err := json.Unmarshal(resp.Body(), &errorResponse); err != nil {
		return errors.Errorf("(HTTP Status: %d) - unable to parse json error response: %s", resp.StatusCode(), err)
	}

	return fmt.Errorf("(HTTP Status: %d) - %s", resp.StatusCode(), errorResponse.Message)
}
