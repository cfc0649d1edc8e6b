package access

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProfiles struct {
	sub Subscription
	err error
}

func (f *fakeProfiles) GetSubscription(ctx context.Context, userID uint64) (Subscription, error) {
	return f.sub, f.err
}

type fakeSettings struct {
	selected  string
	getErr    error
	upsertErr error
	upserts   []string
}

func (f *fakeSettings) GetSelectedMarket(ctx context.Context, userID uint64) (string, error) {
	return f.selected, f.getErr
}

func (f *fakeSettings) UpsertSelectedMarket(ctx context.Context, userID uint64, slug string) error {
	if f.upsertErr != nil {
		return f.upsertErr
	}
	f.upserts = append(f.upserts, slug)
	f.selected = slug
	return nil
}

func TestResolvePublicForAnonymous(t *testing.T) {
	r := NewResolver(&fakeProfiles{}, &fakeSettings{})
	a := r.Resolve(context.Background(), 0)

	assert.Equal(t, TierPublic, a.Tier)
	assert.False(t, a.CanViewFullContent)
	assert.False(t, a.CanViewApplicationSteps)
	assert.False(t, a.CanViewAllMarkets)
	assert.Empty(t, a.SelectedMarket)
}

func TestResolveProForActivePaidPlan(t *testing.T) {
	for _, tier := range []string{"starter", "pro"} {
		r := NewResolver(
			&fakeProfiles{sub: Subscription{Tier: tier, Status: "active"}},
			&fakeSettings{selected: "austin"},
		)
		a := r.Resolve(context.Background(), 42)

		assert.Equal(t, TierPro, a.Tier, tier)
		assert.True(t, a.CanViewFullContent)
		assert.True(t, a.CanViewApplicationSteps)
		assert.True(t, a.CanViewAllMarkets)
		// pro does not carry a selected market
		assert.Empty(t, a.SelectedMarket)
	}
}

func TestResolveFreeForInactivePaidPlan(t *testing.T) {
	r := NewResolver(
		&fakeProfiles{sub: Subscription{Tier: "pro", Status: "canceled"}},
		&fakeSettings{selected: "austin"},
	)
	a := r.Resolve(context.Background(), 42)

	assert.Equal(t, TierFree, a.Tier)
	assert.True(t, a.CanViewFullContent)
	assert.False(t, a.CanViewApplicationSteps)
	assert.False(t, a.CanViewAllMarkets)
	assert.Equal(t, "austin", a.SelectedMarket)
}

func TestResolveFreeForFreeTier(t *testing.T) {
	r := NewResolver(
		&fakeProfiles{sub: Subscription{Tier: "free"}},
		&fakeSettings{},
	)
	a := r.Resolve(context.Background(), 42)

	assert.Equal(t, TierFree, a.Tier)
	assert.Empty(t, a.SelectedMarket)
}

func TestResolveDegradesOnProfileError(t *testing.T) {
	// an unreadable subscription counts as free, never pro
	r := NewResolver(
		&fakeProfiles{err: errors.New("db down")},
		&fakeSettings{selected: "austin"},
	)
	a := r.Resolve(context.Background(), 42)

	assert.Equal(t, TierFree, a.Tier)
	assert.False(t, a.CanViewAllMarkets)
	assert.Equal(t, "austin", a.SelectedMarket)
}

func TestResolveDegradesOnSettingError(t *testing.T) {
	// an unreadable setting counts as no market selected
	r := NewResolver(
		&fakeProfiles{sub: Subscription{Tier: "free"}},
		&fakeSettings{selected: "austin", getErr: errors.New("db down")},
	)
	a := r.Resolve(context.Background(), 42)

	assert.Equal(t, TierFree, a.Tier)
	assert.Empty(t, a.SelectedMarket)
}

func TestCanAccessMarket(t *testing.T) {
	pro := Access{Tier: TierPro, CanViewAllMarkets: true}
	assert.True(t, CanAccessMarket(pro, "austin"))
	assert.True(t, CanAccessMarket(pro, "denver"))

	public := Access{Tier: TierPublic}
	assert.False(t, CanAccessMarket(public, "austin"))

	freeUnset := Access{Tier: TierFree, CanViewFullContent: true}
	assert.True(t, CanAccessMarket(freeUnset, "austin"))
	assert.True(t, CanAccessMarket(freeUnset, "denver"))

	freeLocked := Access{Tier: TierFree, CanViewFullContent: true, SelectedMarket: "austin"}
	assert.True(t, CanAccessMarket(freeLocked, "austin"))
	assert.False(t, CanAccessMarket(freeLocked, "denver"))
}

func TestSetFreeUserMarket(t *testing.T) {
	settings := &fakeSettings{}
	r := NewResolver(&fakeProfiles{}, settings)

	var published []string
	r.Publish = func(ctx context.Context, userID uint64, slug string, tier Tier) {
		published = append(published, slug)
		assert.Equal(t, uint64(42), userID)
		assert.Equal(t, TierFree, tier)
	}

	res := r.SetFreeUserMarket(context.Background(), 42, "austin")
	assert.True(t, res.Success)
	assert.Empty(t, res.Error)
	require.Equal(t, []string{"austin"}, settings.upserts)
	assert.Equal(t, []string{"austin"}, published)
}

func TestSetFreeUserMarketFailure(t *testing.T) {
	settings := &fakeSettings{upsertErr: errors.New("db down")}
	r := NewResolver(&fakeProfiles{}, settings)

	called := false
	r.Publish = func(ctx context.Context, userID uint64, slug string, tier Tier) { called = true }

	res := r.SetFreeUserMarket(context.Background(), 42, "austin")
	assert.False(t, res.Success)
	assert.NotEmpty(t, res.Error)
	// no event for a write that did not happen
	assert.False(t, called)
}

func TestSetFreeUserMarketWithoutPublisher(t *testing.T) {
	settings := &fakeSettings{}
	r := NewResolver(&fakeProfiles{}, settings)

	res := r.SetFreeUserMarket(context.Background(), 42, "austin")
	assert.True(t, res.Success)
}
