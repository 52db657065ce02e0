package client

import (
	"context"
	"errors"
	"reflect"
	"sync"
	"sync/atomic"
)

type EventType string

const (
	EventInitialSession   EventType = "INITIAL_SESSION"
	EventSignedIn         EventType = "SIGNED_IN"
	EventSignedOut        EventType = "SIGNED_OUT"
	EventTokenRefreshed   EventType = "TOKEN_REFRESHED"
	EventPasswordRecovery EventType = "PASSWORD_RECOVERY"
	EventUserUpdated      EventType = "USER_UPDATED"

	subscriberBuffer = 16
)

var ErrSessionClosed = errors.New("session coordinator is closed")

type (
	// State is a snapshot of the signed-in user.
	State struct {
		User    *User
		Profile *Profile
		Session *AuthSession
	}

	Event struct {
		Type  EventType
		State State
	}

	operation struct {
		ctx   context.Context
		run   func(ctx context.Context) error
		reply chan error
	}

	// Session is the single authoritative owner of the auth state on the
	// client side. Every operation which reads or changes the state is
	// executed in order on one goroutine, so a "set session" can never race
	// a "read session". Subscribers are notified of each transition, with
	// repeated notifications for an equivalent state suppressed.
	Session struct {
		client *Client
		ops    chan operation
		done   chan struct{}
		close  sync.Once

		// loading is set by the coordinator while an operation which may
		// change the signed-in user is in flight.
		loading atomic.Bool

		// Owned by the coordinator goroutine
		state       State
		subscribers map[int]chan Event
		nextSubID   int
		lastEvent   *Event
	}
)

func NewSession(client *Client) *Session {
	session := &Session{
		client:      client,
		ops:         make(chan operation),
		done:        make(chan struct{}),
		subscribers: make(map[int]chan Event),
	}

	go session.run()
	return session
}

func (session *Session) run() {
	for {
		select {
		case op := <-session.ops:
			op.reply <- op.run(op.ctx)
		case <-session.done:
			for id, ch := range session.subscribers {
				close(ch)
				delete(session.subscribers, id)
			}
			return
		}
	}
}

// Close stops the coordinator and closes all subscriber channels.
func (session *Session) Close() {
	session.close.Do(func() { close(session.done) })
}

// submit runs the function on the coordinator goroutine and waits for it
// to complete. If the context is cancelled before the operation starts, it is
// never run.
func (session *Session) submit(ctx context.Context, fn func(ctx context.Context) error) error {
	op := operation{ctx: ctx, run: fn, reply: make(chan error, 1)}
	select {
	case session.ops <- op:
	case <-ctx.Done():
		return ctx.Err()
	case <-session.done:
		return ErrSessionClosed
	}

	return <-op.reply
}

// Subscribe returns a channel which receives every state transition, starting
// with the current state as an INITIAL_SESSION event. The returned function
// unsubscribes and closes the channel.
func (session *Session) Subscribe() (<-chan Event, func()) {
	ch := make(chan Event, subscriberBuffer)
	var id int
	err := session.submit(context.Background(), func(context.Context) error {
		id = session.nextSubID
		session.nextSubID++
		session.subscribers[id] = ch
		ch <- Event{Type: EventInitialSession, State: session.state}
		return nil
	})
	if err != nil {
		close(ch)
		return ch, func() {}
	}

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			_ = session.submit(context.Background(), func(context.Context) error {
				if sub, ok := session.subscribers[id]; ok {
					delete(session.subscribers, id)
					close(sub)
				}
				return nil
			})
		})
	}
}

// Loading returns true while a sign in is being resolved. Unlike State, it
// does not wait for the operation in flight.
func (session *Session) Loading() bool { return session.loading.Load() }

// State returns the current state.
func (session *Session) State(ctx context.Context) (State, error) {
	var state State
	err := session.submit(ctx, func(context.Context) error {
		state = session.state
		return nil
	})

	return state, err
}

func (session *Session) SignupSendOTP(ctx context.Context, email string) error {
	return session.client.post(ctx, "/api/auth/signup/send-otp", "", map[string]string{"email": email}, nil)
}

// SignupVerifyOTP completes the signup. On success the session returned by
// the server is adopted as the signed-in session.
func (session *Session) SignupVerifyOTP(ctx context.Context, req SignupRequest) error {
	return session.authenticate(ctx, EventSignedIn, func(ctx context.Context) (*AuthResult, error) {
		var result AuthResult
		err := session.client.post(ctx, "/api/auth/signup/verify-otp", "", req, &result)
		return &result, err
	})
}

func (session *Session) Login(ctx context.Context, email string, password string) error {
	return session.authenticate(ctx, EventSignedIn, func(ctx context.Context) (*AuthResult, error) {
		var result AuthResult
		err := session.client.post(ctx, "/api/auth/login", "", map[string]string{"email": email, "password": password}, &result)
		return &result, err
	})
}

func (session *Session) ForgotPasswordSendOTP(ctx context.Context, email string) error {
	return session.client.post(ctx, "/api/auth/forgot-password/send-otp", "", map[string]string{"email": email}, nil)
}

// ForgotPasswordVerifyOTP exchanges the recovery OTP for a session, which
// can then be used to ResetPassword.
func (session *Session) ForgotPasswordVerifyOTP(ctx context.Context, email string, token string) error {
	return session.authenticate(ctx, EventPasswordRecovery, func(ctx context.Context) (*AuthResult, error) {
		var result AuthResult
		err := session.client.post(ctx, "/api/auth/forgot-password/verify-otp", "", map[string]string{"email": email, "token": token}, &result)
		return &result, err
	})
}

func (session *Session) ResetPassword(ctx context.Context, newPassword string) error {
	return session.submit(ctx, func(ctx context.Context) error {
		if session.state.Session == nil {
			return &Error{Status: 401, Message: "Unauthorized"}
		}

		if err := session.client.post(ctx, "/api/auth/forgot-password/reset", session.state.Session.AccessToken, map[string]string{"newPassword": newPassword}, nil); err != nil {
			return err
		}

		session.publish(EventUserUpdated)
		return nil
	})
}

// SetSession adopts tokens obtained outside of this client (for example at
// the end of a social login redirect). The user and profile are fetched
// using the access token. Adopting the current session again is a no-op.
func (session *Session) SetSession(ctx context.Context, auth AuthSession) error {
	return session.submit(ctx, func(ctx context.Context) error {
		if current := session.state.Session; current != nil && current.AccessToken == auth.AccessToken {
			return nil
		}

		session.loading.Store(true)
		defer session.loading.Store(false)

		var me UserProfile
		if err := session.client.get(ctx, "/api/profile/me", auth.AccessToken, &me); err != nil {
			return err
		}

		session.state.Session = &auth
		session.state.User = me.User
		session.state.Profile = me.Profile
		session.publish(EventSignedIn)
		return nil
	})
}

// Refresh exchanges the refresh token for a new session.
func (session *Session) Refresh(ctx context.Context) error {
	return session.submit(ctx, func(ctx context.Context) error {
		if session.state.Session == nil {
			return &Error{Status: 401, Message: "Unauthorized"}
		}

		var result AuthResult
		if err := session.client.post(ctx, "/api/auth/refresh", "", map[string]string{"refreshToken": session.state.Session.RefreshToken}, &result); err != nil {
			return err
		}

		session.state.Session = result.Session
		if result.User != nil {
			session.state.User = result.User
		}
		session.publish(EventTokenRefreshed)
		return nil
	})
}

// RefreshProfile refetches the profile of the signed-in user.
func (session *Session) RefreshProfile(ctx context.Context) error {
	return session.submit(ctx, func(ctx context.Context) error {
		if session.state.Session == nil {
			return &Error{Status: 401, Message: "Unauthorized"}
		}

		if err := session.fetchProfile(ctx); err != nil {
			return err
		}

		session.publish(EventUserUpdated)
		return nil
	})
}

// Logout revokes the session on the server. The local state is cleared even
// if the server could not be reached, in which case the error is returned.
func (session *Session) Logout(ctx context.Context) error {
	return session.submit(ctx, func(ctx context.Context) error {
		if session.state.Session == nil {
			return nil
		}

		err := session.client.post(ctx, "/api/auth/logout", session.state.Session.AccessToken, nil, nil)
		session.state = State{}
		session.publish(EventSignedOut)
		return err
	})
}

// authenticate runs the call on the coordinator and, on success, adopts the
// session it returned. The profile is always refetched on sign in.
func (session *Session) authenticate(ctx context.Context, ev EventType, call func(context.Context) (*AuthResult, error)) error {
	return session.submit(ctx, func(ctx context.Context) error {
		session.loading.Store(true)
		defer session.loading.Store(false)

		result, err := call(ctx)
		if err != nil {
			return err
		}
		if result.Session == nil {
			return &Error{Message: UnexpectedErrorMessage, Err: errors.New("no session returned")}
		}

		session.state.Session = result.Session
		session.state.User = result.User
		session.state.Profile = result.Profile
		if err := session.fetchProfile(ctx); err != nil {
			log.Warnf("Failed to fetch profile after sign in: %v\n", err)
		}

		session.publish(ev)
		return nil
	})
}

func (session *Session) fetchProfile(ctx context.Context) error {
	var me UserProfile
	if err := session.client.get(ctx, "/api/profile/me", session.state.Session.AccessToken, &me); err != nil {
		return err
	}

	if me.User != nil {
		session.state.User = me.User
	}
	session.state.Profile = me.Profile
	return nil
}

// publish notifies subscribers of the current state, unless the event is
// equivalent to the last one sent. Slow subscribers miss events rather than
// stall the coordinator.
func (session *Session) publish(ev EventType) {
	event := Event{Type: ev, State: session.state}
	if session.lastEvent != nil && equivalent(*session.lastEvent, event) {
		return
	}
	session.lastEvent = &event

	for id, ch := range session.subscribers {
		select {
		case ch <- event:
		default:
			log.Warnf("Session subscriber %d is not keeping up, dropping %s event\n", id, ev)
		}
	}
}

// equivalent reports whether b would tell subscribers nothing that a had
// not already. Profile and user contents are compared, not just identity.
func equivalent(a Event, b Event) bool {
	if a.Type != b.Type || tokenOf(a.State) != tokenOf(b.State) {
		return false
	}

	return reflect.DeepEqual(a.State.User, b.State.User) && reflect.DeepEqual(a.State.Profile, b.State.Profile)
}

func tokenOf(state State) string {
	if state.Session == nil {
		return ""
	}
	return state.Session.AccessToken
}
