package i18n

const (
	InvalidCredentials    Key = "auth.invalid_credentials"
	RoleMismatch          Key = "auth.role_mismatch"
	ProfileMissing        Key = "auth.profile_missing"
	RegisterFailed        Key = "auth.register_failed"
	WeakPassword          Key = "auth.weak_password"
	ResetFailed           Key = "auth.reset_failed"
	ResetSent             Key = "auth.reset_sent"
	ResetTokenInvalid     Key = "auth.reset_token_invalid"
	PasswordChanged       Key = "auth.password_changed"
	Unauthorized          Key = "auth.unauthorized"
	LoggedOut             Key = "auth.logged_out"
	DemoForbidden         Key = "auth.demo_forbidden"
	RoleUndefined         Key = "role.undefined"
	Forbidden             Key = "access.forbidden"
	InvalidRequest        Key = "request.invalid"
	InternalError         Key = "internal"
	ProfileNotFound       Key = "profile.not_found"
	ProfileLoadFailed     Key = "profile.load_failed"
	ProfileSaveFailed     Key = "profile.save_failed"
	ProfileUpdated        Key = "profile.updated"
	PropertyInvalidArea   Key = "property.invalid_area"
	PropertyInvalid       Key = "property.invalid"
	PropertyNotFound      Key = "property.not_found"
	PropertySaveFailed    Key = "property.save_failed"
	CounterpartyNotFound  Key = "contract.counterparty_not_found"
	ContractInvalid       Key = "contract.invalid"
	ContractNotFound      Key = "contract.not_found"
	ContractSaveFailed    Key = "contract.save_failed"
	ContractDeleted       Key = "contract.deleted"
	UserNotFound          Key = "user.not_found"
	LandlordDashboard     Key = "dashboard.landlord"
	TenantDashboard       Key = "dashboard.tenant"
	SellerDashboard       Key = "dashboard.seller"
	BuyerDashboard        Key = "dashboard.buyer"
	AdminPanel            Key = "dashboard.admin_panel"
	ProfilePage           Key = "dashboard.profile"
	ContractsPage         Key = "dashboard.contracts"
	DemoBanner            Key = "dashboard.demo_banner"
	FeatureSampleContract Key = "feature.sample_contract"
	FeatureSampleDesc     Key = "feature.sample_contract.desc"
	FeatureViewSample     Key = "feature.view_sample_contract"
	FeatureViewSampleDesc Key = "feature.view_sample_contract.desc"
	FeaturePayments       Key = "feature.payments"
	FeaturePaymentsDemo   Key = "feature.payments.demo_desc"
	FeaturePaymentsDesc   Key = "feature.payments.desc"
	FeatureRequests       Key = "feature.requests"
	FeatureRequestsDesc   Key = "feature.requests.desc"
	FeatureSearch         Key = "feature.search"
	FeatureSearchDesc     Key = "feature.search.desc"
	FeaturePayRent        Key = "feature.pay_rent"
	FeaturePayRentDesc    Key = "feature.pay_rent.desc"
	FeatureListForSale    Key = "feature.list_for_sale"
	FeatureListForSaleDsc Key = "feature.list_for_sale.desc"
	FeatureSales          Key = "feature.sales"
	FeatureSalesDesc      Key = "feature.sales.desc"
	FeaturePurchases      Key = "feature.purchases"
	FeaturePurchasesDesc  Key = "feature.purchases.desc"
)

var persian = map[Key]string{
	InvalidCredentials:    "ایمیل یا رمز عبور اشتباه است.",
	RoleMismatch:          "نقش انتخابی شما با نقش ثبت شده در سیستم مغایرت دارد.",
	ProfileMissing:        "پروفایل کاربری یافت نشد.",
	RegisterFailed:        "خطا در ثبت نام. ممکن است این ایمیل قبلا استفاده شده باشد.",
	WeakPassword:          "رمز عبور باید حداقل ۶ کاراکتر باشد.",
	ResetFailed:           "خطا در ارسال ایمیل بازیابی. لطفا از صحیح بودن ایمیل خود اطمینان حاصل کنید.",
	ResetSent:             "ایمیل بازیابی رمز عبور با موفقیت ارسال شد.",
	ResetTokenInvalid:     "لینک بازیابی نامعتبر است یا منقضی شده است.",
	PasswordChanged:       "رمز عبور با موفقیت تغییر کرد.",
	Unauthorized:          "نشست شما معتبر نیست. لطفا دوباره وارد شوید.",
	LoggedOut:             "با موفقیت خارج شدید.",
	DemoForbidden:         "برای فعال‌سازی فرم کامل و ذخیره قرارداد، حساب کاربری خود را ایجاد کنید.",
	RoleUndefined:         "نقش شما در سیستم تعریف نشده است.",
	Forbidden:             "شما به این بخش دسترسی ندارید.",
	InvalidRequest:        "اطلاعات ارسال شده معتبر نیست.",
	InternalError:         "خطای سیستمی. لطفا دوباره تلاش کنید.",
	ProfileNotFound:       "پروفایل یافت نشد.",
	ProfileLoadFailed:     "خطا در دریافت اطلاعات پروفایل.",
	ProfileSaveFailed:     "خطا در ذخیره اطلاعات.",
	ProfileUpdated:        "پروفایل با موفقیت بروزرسانی شد.",
	PropertyInvalidArea:   "متراژ باید یک عدد مثبت باشد.",
	PropertyInvalid:       "اطلاعات ملک معتبر نیست.",
	PropertyNotFound:      "ملک یافت نشد.",
	PropertySaveFailed:    "خطا در ثبت ملک.",
	CounterpartyNotFound:  "کاربری با این ایمیل یافت نشد.",
	ContractInvalid:       "اطلاعات قرارداد معتبر نیست.",
	ContractNotFound:      "قرارداد یافت نشد.",
	ContractSaveFailed:    "خطا در ثبت قرارداد.",
	ContractDeleted:       "قرارداد حذف شد.",
	UserNotFound:          "کاربر یافت نشد.",
	LandlordDashboard:     "داشبورد موجر",
	TenantDashboard:       "داشبورد مستأجر",
	SellerDashboard:       "داشبورد فروشنده",
	BuyerDashboard:        "داشبورد خریدار",
	AdminPanel:            "پنل مدیریت",
	ProfilePage:           "پروفایل کاربری",
	ContractsPage:         "قراردادهای من",
	DemoBanner:            "شما در حالت دمو هستید. برای دسترسی به تمام امکانات، ثبت‌نام کنید.",
	FeatureSampleContract: "ایجاد قرارداد نمونه",
	FeatureSampleDesc:     "یک پیش‌نمایش از قرارداد اجاره بسازید",
	FeatureViewSample:     "مشاهده قرارداد نمونه",
	FeatureViewSampleDesc: "یک پیش‌نمایش از قرارداد اجاره ببینید",
	FeaturePayments:       "پیگیری پرداخت‌ها",
	FeaturePaymentsDemo:   "وضعیت پرداخت اجاره‌ها را ببینید",
	FeaturePaymentsDesc:   "وضعیت پرداخت اجاره‌ها",
	FeatureRequests:       "بررسی درخواست‌ها",
	FeatureRequestsDesc:   "درخواست‌های اجاره را ببینید",
	FeatureSearch:         "جستجوی ملک",
	FeatureSearchDesc:     "ملک‌های جدید را پیدا کنید",
	FeaturePayRent:        "پرداخت اجاره",
	FeaturePayRentDesc:    "اجاره ماهانه را پرداخت کنید",
	FeatureListForSale:    "ثبت ملک برای فروش",
	FeatureListForSaleDsc: "ملک‌های خود را برای فروش ثبت کنید",
	FeatureSales:          "قراردادهای فروش",
	FeatureSalesDesc:      "قراردادهای فروش خود را مدیریت کنید",
	FeaturePurchases:      "قراردادهای خرید",
	FeaturePurchasesDesc:  "قراردادهای خرید خود را ببینید",
}

var english = map[Key]string{
	InvalidCredentials:    "Incorrect email or password.",
	RoleMismatch:          "The selected role does not match the role registered for this account.",
	ProfileMissing:        "User profile not found.",
	RegisterFailed:        "Registration failed. This email may already be in use.",
	WeakPassword:          "Password must be at least 6 characters.",
	ResetFailed:           "Could not send the recovery email. Please check that the address is correct.",
	ResetSent:             "Password recovery email sent.",
	ResetTokenInvalid:     "The recovery link is invalid or has expired.",
	PasswordChanged:       "Password changed.",
	Unauthorized:          "Your session is not valid. Please sign in again.",
	LoggedOut:             "Signed out.",
	DemoForbidden:         "Create an account to enable the full form and save records.",
	RoleUndefined:         "Your role is not defined in the system.",
	Forbidden:             "You do not have access to this section.",
	InvalidRequest:        "The submitted data is not valid.",
	InternalError:         "System error. Please try again.",
	ProfileNotFound:       "Profile not found.",
	ProfileLoadFailed:     "Could not load profile.",
	ProfileSaveFailed:     "Could not save changes.",
	ProfileUpdated:        "Profile updated.",
	PropertyInvalidArea:   "Area must be a positive number.",
	PropertyInvalid:       "The property details are not valid.",
	PropertyNotFound:      "Property not found.",
	PropertySaveFailed:    "Could not save the property.",
	CounterpartyNotFound:  "No user was found with this email.",
	ContractInvalid:       "The contract details are not valid.",
	ContractNotFound:      "Contract not found.",
	ContractSaveFailed:    "Could not save the contract.",
	ContractDeleted:       "Contract deleted.",
	UserNotFound:          "User not found.",
	LandlordDashboard:     "Landlord dashboard",
	TenantDashboard:       "Tenant dashboard",
	SellerDashboard:       "Seller dashboard",
	BuyerDashboard:        "Buyer dashboard",
	AdminPanel:            "Admin panel",
	ProfilePage:           "User profile",
	ContractsPage:         "My contracts",
	DemoBanner:            "You are in demo mode. Register to unlock every feature.",
	FeatureSampleContract: "Create a sample contract",
	FeatureSampleDesc:     "Build a preview of a rental contract",
	FeatureViewSample:     "View a sample contract",
	FeatureViewSampleDesc: "See a preview of a rental contract",
	FeaturePayments:       "Payment tracking",
	FeaturePaymentsDemo:   "See the status of rent payments",
	FeaturePaymentsDesc:   "Rent payment status",
	FeatureRequests:       "Review requests",
	FeatureRequestsDesc:   "See rental requests",
	FeatureSearch:         "Property search",
	FeatureSearchDesc:     "Find new properties",
	FeaturePayRent:        "Pay rent",
	FeaturePayRentDesc:    "Pay your monthly rent",
	FeatureListForSale:    "List a property for sale",
	FeatureListForSaleDsc: "Put your properties on the market",
	FeatureSales:          "Sale contracts",
	FeatureSalesDesc:      "Manage your sale contracts",
	FeaturePurchases:      "Purchase contracts",
	FeaturePurchasesDesc:  "See your purchase contracts",
}
