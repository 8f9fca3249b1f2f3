package api

import "context"

// VerifySourceCode submits contract source for verification and returns the GUID to
// poll with CheckVerifyStatus. The source travels in the POST body.
func (c *Client) VerifySourceCode(ctx context.Context, opts VerifySourceCodeOptions) (string, error) {
	return postRest[string](ctx, c, endpoint{ModuleContract, ActionVerifySourceCode}, opts)
}

// CheckVerifyStatus returns the verification outcome of a submitted GUID, e.g.
// "Pass - Verified". A pending submission is reported with status "0", so it surfaces as
// a *ResponseError whose envelope reads "Pending in queue".
func (c *Client) CheckVerifyStatus(ctx context.Context, opts CheckVerifyStatusOptions) (string, error) {
	return getRest[string](ctx, c, endpoint{ModuleContract, ActionCheckVerifyStatus}, opts)
}
