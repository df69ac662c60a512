// Package callback serves the OAuth2 redirect URI of the authorization code flows.
//
// # Handler
//
// [Handler] accepts exactly one callback on the redirect path and delivers the received code and state as a
// [Result] on a channel. An "error" parameter sent by the accounts service (for example when the user denies
// access) becomes [Result.Err]. The state is not checked here: pass it to Authenticate, which compares it with the
// authorisation handle and reports a mismatch as an invalid state parameter.
//
// # Router
//
// [Router] is a small [http.ServeMux] wrapper with middleware, applied in reverse order (last added executes
// first). [Logging] reports each request to a [log.Logger].
//
// # Waiting for the redirect
//
// [Wait] starts a temporary server on the redirect URI's host, blocks until the callback arrives or the context
// ends, and shuts the server down:
//
//	auth := client.Authorisation(spotify.ScopeUserReadEmail)
//	fmt.Println("open", auth.URL())
//	res, err := callback.Wait(ctx, redirectURI, logger)
//	if err != nil {
//		return err
//	}
//	user, err := client.Authenticate(ctx, auth, res.Code, res.State)
package callback
