package identity

import (
	"context"
	"sync"

	"github.com/2beens/gymtracker/internal/telemetry/metrics"
	"github.com/2beens/gymtracker/internal/telemetry/tracing"
	"github.com/2beens/gymtracker/internal/tracker/model"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=identity_test

type profileFetcher interface {
	FetchProfile(ctx context.Context) (*Profile, error)
}

type onboardingFlags interface {
	IsOnboarded(ctx context.Context) (bool, error)
	MarkOnboarded(ctx context.Context) error
}

type userStore interface {
	SetCurrentUser(user model.User)
	CurrentUser() (model.User, bool)
	SetShowOnBoardingModal(show bool)
}

// Bootstrapper resolves the current user once per process and puts it into the store.
type Bootstrapper struct {
	fetcher  profileFetcher
	flags    onboardingFlags
	store    userStore
	fallback Profile
	metrics  *metrics.Manager

	once sync.Once
	user model.User
}

func NewBootstrapper(
	fetcher profileFetcher,
	flags onboardingFlags,
	store userStore,
	fallback Profile,
	metricsManager *metrics.Manager,
) *Bootstrapper {
	return &Bootstrapper{
		fetcher:  fetcher,
		flags:    flags,
		store:    store,
		fallback: fallback,
		metrics:  metricsManager,
	}
}

// Bootstrap never fails: a profile provider error falls back to the configured profile,
// and an unreadable onboarding flag counts as a first login.
func (b *Bootstrapper) Bootstrap(ctx context.Context) model.User {
	b.once.Do(func() {
		b.user = b.bootstrap(ctx)
	})
	return b.user
}

func (b *Bootstrapper) bootstrap(ctx context.Context) model.User {
	ctx, span := tracing.GlobalTracer.Start(ctx, "identity.bootstrap")
	defer span.End()

	profile, err := b.fetcher.FetchProfile(ctx)
	if err != nil {
		log.Warnf("fetch profile failed, using fallback profile: %s", err)
		if b.metrics != nil {
			b.metrics.CounterIdentityFallbacks.Inc()
		}
		fallback := b.fallback
		profile = &fallback
	}
	span.SetAttributes(attribute.Bool("identity.fallback", err != nil))

	onboarded, err := b.flags.IsOnboarded(ctx)
	if err != nil {
		log.Errorf("read onboarding flag: %s", err)
		onboarded = false
	}

	user := profile.ToUser()
	user.FirstLogin = !onboarded
	b.store.SetCurrentUser(user)
	b.store.SetShowOnBoardingModal(!onboarded)

	log.Debugf("current user bootstrapped: %s [first login: %t]", user.ID, user.FirstLogin)
	return user
}

// CompleteOnboarding persists the flag and hides the onboarding modal. Dismissing and skipping
// the onboarding both end up here.
func (b *Bootstrapper) CompleteOnboarding(ctx context.Context) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "identity.complete-onboarding")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := b.flags.MarkOnboarded(ctx); err != nil {
		return err
	}

	b.store.SetShowOnBoardingModal(false)
	if user, ok := b.store.CurrentUser(); ok && user.FirstLogin {
		user.FirstLogin = false
		b.store.SetCurrentUser(user)
	}
	return nil
}
