package usecases

import (
	"fmt"

	"realty-server/entities"
	"realty-server/i18n"
)

type View string

const (
	ViewDashboard View = "dashboard"
	ViewProfile   View = "profile"
	ViewContracts View = "contracts"
	ViewAdmin     View = "admin"
)

func (v View) Valid() bool {
	switch v {
	case ViewDashboard, ViewProfile, ViewContracts, ViewAdmin:
		return true
	}
	return false
}

type Feature struct {
	Title       i18n.Key `json:"title"`
	Description i18n.Key `json:"description"`
	Action      string   `json:"action,omitempty"`
}

// Descriptor is everything a client needs to draw one screen.
type Descriptor struct {
	View       View      `json:"view"`
	Variant    string    `json:"variant"`
	Title      i18n.Key  `json:"title"`
	Demo       bool      `json:"demo"`
	Banner     i18n.Key  `json:"banner,omitempty"`
	Message    i18n.Key  `json:"message,omitempty"`
	Features   []Feature `json:"features"`
	Navigation []View    `json:"navigation"`
}

// Dashboard is implemented once per role. The set is closed.
type Dashboard interface {
	Variant() string
	render(demo bool) Descriptor
}

type landlordDashboard struct{}
type tenantDashboard struct{}
type sellerDashboard struct{}
type buyerDashboard struct{}
type adminDashboard struct{}

// guestDashboard shows the demo layout of the role picked at demo entry.
type guestDashboard struct{ as entities.Role }

func (landlordDashboard) Variant() string { return string(entities.RoleLandlord) }
func (tenantDashboard) Variant() string   { return string(entities.RoleTenant) }
func (sellerDashboard) Variant() string   { return string(entities.RoleSeller) }
func (buyerDashboard) Variant() string    { return string(entities.RoleBuyer) }
func (adminDashboard) Variant() string    { return string(entities.RoleAdmin) }
func (guestDashboard) Variant() string    { return string(entities.RoleGuest) }

func (landlordDashboard) render(demo bool) Descriptor {
	d := Descriptor{Title: i18n.LandlordDashboard}
	if demo {
		d.Features = []Feature{
			{Title: i18n.FeatureSampleContract, Description: i18n.FeatureSampleDesc, Action: "sample_contract"},
			{Title: i18n.FeaturePayments, Description: i18n.FeaturePaymentsDemo},
		}
		return d
	}
	d.Features = []Feature{
		{Title: i18n.FeatureRequests, Description: i18n.FeatureRequestsDesc},
		{Title: i18n.FeaturePayments, Description: i18n.FeaturePaymentsDesc},
	}
	return d
}

func (tenantDashboard) render(demo bool) Descriptor {
	d := Descriptor{Title: i18n.TenantDashboard}
	if demo {
		d.Features = []Feature{
			{Title: i18n.FeatureSearch, Description: i18n.FeatureSearchDesc},
			{Title: i18n.FeatureViewSample, Description: i18n.FeatureViewSampleDesc, Action: "sample_contract"},
		}
		return d
	}
	d.Features = []Feature{
		{Title: i18n.FeatureSearch, Description: i18n.FeatureSearchDesc},
		{Title: i18n.FeaturePayRent, Description: i18n.FeaturePayRentDesc},
	}
	return d
}

func (sellerDashboard) render(bool) Descriptor {
	return Descriptor{
		Title: i18n.SellerDashboard,
		Features: []Feature{
			{Title: i18n.FeatureListForSale, Description: i18n.FeatureListForSaleDsc},
			{Title: i18n.FeatureSales, Description: i18n.FeatureSalesDesc},
		},
	}
}

func (buyerDashboard) render(bool) Descriptor {
	return Descriptor{
		Title: i18n.BuyerDashboard,
		Features: []Feature{
			{Title: i18n.FeatureSearch, Description: i18n.FeatureSearchDesc},
			{Title: i18n.FeaturePurchases, Description: i18n.FeaturePurchasesDesc},
		},
	}
}

// Admins get the landlord layout plus the admin entry point.
func (adminDashboard) render(demo bool) Descriptor {
	return landlordDashboard{}.render(demo)
}

// Demo entry only has landlord and tenant layouts; every other role
// lands on the landlord one.
func (g guestDashboard) render(bool) Descriptor {
	var d Descriptor
	if g.as == entities.RoleTenant {
		d = tenantDashboard{}.render(true)
	} else {
		d = landlordDashboard{}.render(true)
	}
	d.Banner = i18n.DemoBanner
	return d
}

// DashboardFor returns the variant for a stored role, or nil when the
// role is unknown.
func DashboardFor(role entities.Role) Dashboard {
	switch role {
	case entities.RoleLandlord:
		return landlordDashboard{}
	case entities.RoleTenant:
		return tenantDashboard{}
	case entities.RoleSeller:
		return sellerDashboard{}
	case entities.RoleBuyer:
		return buyerDashboard{}
	case entities.RoleAdmin:
		return adminDashboard{}
	}
	return nil
}

type DashboardUseCase struct{}

func NewDashboardUseCase() *DashboardUseCase {
	return &DashboardUseCase{}
}

// Route picks the screen to show for s and the requested view.
func (uc *DashboardUseCase) Route(s *Session, view View) (Descriptor, error) {
	if s == nil {
		return Descriptor{}, ErrUnauthorized
	}
	if view == "" {
		view = ViewDashboard
	}
	if !view.Valid() {
		return Descriptor{}, fmt.Errorf("%w: view %q", ErrInvalidInput, view)
	}

	if s.Demo {
		if view != ViewDashboard {
			return Descriptor{}, ErrDemoForbidden
		}
		d := guestDashboard{as: s.Role}.render(true)
		d.View = ViewDashboard
		d.Variant = guestDashboard{}.Variant()
		d.Demo = true
		d.Navigation = []View{}
		return d, nil
	}

	dash := DashboardFor(s.Role)
	if dash == nil {
		return Descriptor{
			View:       view,
			Variant:    "undefined",
			Message:    i18n.RoleUndefined,
			Features:   []Feature{},
			Navigation: []View{},
		}, nil
	}

	nav := []View{ViewDashboard, ViewProfile, ViewContracts}
	if s.IsAdmin() {
		nav = append(nav, ViewAdmin)
	}

	var d Descriptor
	switch view {
	case ViewAdmin:
		if !s.IsAdmin() {
			return Descriptor{}, ErrForbidden
		}
		d = Descriptor{Title: i18n.AdminPanel, Features: []Feature{}}
	case ViewProfile:
		d = Descriptor{Title: i18n.ProfilePage, Features: []Feature{}}
	case ViewContracts:
		d = Descriptor{Title: i18n.ContractsPage, Features: []Feature{}}
	default:
		d = dash.render(false)
	}
	d.View = view
	d.Variant = dash.Variant()
	d.Navigation = nav
	return d, nil
}
