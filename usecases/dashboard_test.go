package usecases

import (
	"testing"

	"realty-server/entities"
	"realty-server/i18n"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func featureTitles(d Descriptor) []i18n.Key {
	keys := make([]i18n.Key, 0, len(d.Features))
	for _, f := range d.Features {
		keys = append(keys, f.Title)
	}
	return keys
}

func TestRoute_Dashboards(t *testing.T) {
	uc := NewDashboardUseCase()

	tests := []struct {
		name     string
		session  *Session
		variant  string
		title    i18n.Key
		features []i18n.Key
	}{
		{"landlord", &Session{UserID: "u", Role: entities.RoleLandlord}, "landlord", i18n.LandlordDashboard,
			[]i18n.Key{i18n.FeatureRequests, i18n.FeaturePayments}},
		{"tenant", &Session{UserID: "u", Role: entities.RoleTenant}, "tenant", i18n.TenantDashboard,
			[]i18n.Key{i18n.FeatureSearch, i18n.FeaturePayRent}},
		{"seller", &Session{UserID: "u", Role: entities.RoleSeller}, "seller", i18n.SellerDashboard,
			[]i18n.Key{i18n.FeatureListForSale, i18n.FeatureSales}},
		{"buyer", &Session{UserID: "u", Role: entities.RoleBuyer}, "buyer", i18n.BuyerDashboard,
			[]i18n.Key{i18n.FeatureSearch, i18n.FeaturePurchases}},
		{"admin sees landlord layout", &Session{UserID: "u", Role: entities.RoleAdmin}, "admin", i18n.LandlordDashboard,
			[]i18n.Key{i18n.FeatureRequests, i18n.FeaturePayments}},
		{"demo landlord", &Session{Demo: true, Role: entities.RoleLandlord}, "guest", i18n.LandlordDashboard,
			[]i18n.Key{i18n.FeatureSampleContract, i18n.FeaturePayments}},
		{"demo tenant", &Session{Demo: true, Role: entities.RoleTenant}, "guest", i18n.TenantDashboard,
			[]i18n.Key{i18n.FeatureSearch, i18n.FeatureViewSample}},
		{"demo buyer falls back to landlord", &Session{Demo: true, Role: entities.RoleBuyer}, "guest", i18n.LandlordDashboard,
			[]i18n.Key{i18n.FeatureSampleContract, i18n.FeaturePayments}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := uc.Route(tt.session, "")
			require.NoError(t, err)
			assert.Equal(t, ViewDashboard, d.View)
			assert.Equal(t, tt.variant, d.Variant)
			assert.Equal(t, tt.title, d.Title)
			assert.Equal(t, tt.features, featureTitles(d))
			assert.Equal(t, tt.session.Demo, d.Demo)
		})
	}
}

func TestRoute_Navigation(t *testing.T) {
	uc := NewDashboardUseCase()

	admin := &Session{UserID: "a", Role: entities.RoleAdmin}
	d, err := uc.Route(admin, ViewDashboard)
	require.NoError(t, err)
	assert.Contains(t, d.Navigation, ViewAdmin)

	d, err = uc.Route(admin, ViewAdmin)
	require.NoError(t, err)
	assert.Equal(t, i18n.AdminPanel, d.Title)

	tenant := &Session{UserID: "t", Role: entities.RoleTenant}
	d, err = uc.Route(tenant, ViewProfile)
	require.NoError(t, err)
	assert.Equal(t, i18n.ProfilePage, d.Title)
	assert.NotContains(t, d.Navigation, ViewAdmin)

	_, err = uc.Route(tenant, ViewAdmin)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = uc.Route(tenant, "settings")
	assert.ErrorIs(t, err, ErrInvalidInput)

	demo := &Session{Demo: true, Role: entities.RoleTenant}
	d, err = uc.Route(demo, ViewDashboard)
	require.NoError(t, err)
	assert.Equal(t, i18n.DemoBanner, d.Banner)
	_, err = uc.Route(demo, ViewContracts)
	assert.ErrorIs(t, err, ErrDemoForbidden)

	_, err = uc.Route(nil, ViewDashboard)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestRoute_UndefinedRole(t *testing.T) {
	d, err := NewDashboardUseCase().Route(&Session{UserID: "u"}, ViewContracts)
	require.NoError(t, err)
	assert.Equal(t, "undefined", d.Variant)
	assert.Equal(t, i18n.RoleUndefined, d.Message)
	assert.Empty(t, d.Features)
	assert.Empty(t, d.Navigation)
}

func TestDashboardFor(t *testing.T) {
	for _, role := range append(entities.SelfServiceRoles, entities.RoleAdmin) {
		dash := DashboardFor(role)
		require.NotNil(t, dash, role)
		assert.Equal(t, string(role), dash.Variant())
	}
	assert.Nil(t, DashboardFor(entities.RoleGuest))
	assert.Nil(t, DashboardFor(""))
}
