package identity

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"stackwise-service/internal/app/config"
	"stackwise-service/internal/app/contracts"
	"stackwise-service/internal/pkg/constvars"
	"stackwise-service/internal/pkg/dto/responses"
	"stackwise-service/internal/pkg/exceptions"
	"strings"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type identityClient struct {
	BaseUrl      string
	ClientID     string
	ClientSecret string
	Audience     string
	Log          *zap.Logger
}

func NewIdentityClient(identityConfig config.Identity, logger *zap.Logger) contracts.IdentityClient {
	baseUrl := identityConfig.Domain
	if !strings.HasPrefix(baseUrl, "http://") && !strings.HasPrefix(baseUrl, "https://") {
		baseUrl = "https://" + baseUrl
	}
	return &identityClient{
		BaseUrl:      baseUrl,
		ClientID:     identityConfig.ClientID,
		ClientSecret: identityConfig.ClientSecret,
		Audience:     identityConfig.Audience,
		Log:          logger,
	}
}

// AcquireManagementToken exchanges the service credentials for a short-lived
// management API token. Tokens are not cached; every mutation re-acquires
// one, trading a round-trip for freedom from stale-token bugs.
func (c *identityClient) AcquireManagementToken(ctx context.Context) (*responses.ManagementToken, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("identityClient.AcquireManagementToken called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	payload := map[string]string{
		"client_id":     c.ClientID,
		"client_secret": c.ClientSecret,
		"audience":      c.Audience,
		"grant_type":    "client_credentials",
	}
	requestJSON, err := json.Marshal(payload)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, c.BaseUrl+"/oauth/token", bytes.NewBuffer(requestJSON))
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		c.Log.Error("identityClient.AcquireManagementToken error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		bodyBytes, _ := io.ReadAll(resp.Body)
		c.Log.Error("identityClient.AcquireManagementToken token exchange failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
		)
		return nil, exceptions.ErrTokenExchangeFailed(resp.StatusCode, string(bodyBytes))
	}

	token := new(responses.ManagementToken)
	err = json.NewDecoder(resp.Body).Decode(token)
	if err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}

	c.Log.Info("identityClient.AcquireManagementToken succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return token, nil
}

// UpdateUserRecord applies a sparse patch to the user's identity-provider
// record. Token acquisition gates the mutation: when the exchange fails the
// PATCH is never attempted. Upstream rejections pass through with their
// status and body intact so callers can surface provider-specific detail.
func (c *identityClient) UpdateUserRecord(ctx context.Context, userID string, patch map[string]interface{}) (map[string]interface{}, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("identityClient.UpdateUserRecord called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
	)

	token, err := c.AcquireManagementToken(ctx)
	if err != nil {
		return nil, err
	}

	requestJSON, err := json.Marshal(patch)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	endpoint := fmt.Sprintf("%s/api/v2/users/%s", c.BaseUrl, url.PathEscape(userID))
	req, err := http.NewRequestWithContext(ctx, constvars.MethodPatch, endpoint, bytes.NewBuffer(requestJSON))
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	req.Header.Set(constvars.HeaderAuthorization, constvars.AuthorizationBearerPrefix+token.AccessToken)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		c.Log.Error("identityClient.UpdateUserRecord error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.Log.Error("identityClient.UpdateUserRecord provider rejected update",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUserIDKey, userID),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
		)
		return nil, exceptions.ErrIdentityUpdateRejected(resp.StatusCode, string(bodyBytes))
	}

	updated := map[string]interface{}{}
	err = json.Unmarshal(bodyBytes, &updated)
	if err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}

	c.Log.Info("identityClient.UpdateUserRecord succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
	)
	return updated, nil
}
