// Package i18n holds the compiled-in UI strings.
// Lookup order: requested language, then English, then the key itself.
package i18n

import (
	"fmt"
	"sort"

	"github.com/dmitrijs2005/nutrio/internal/client/models"
)

// Translate returns the string for key in lang. Extra args are applied with
// fmt.Sprintf when given.
func Translate(lang models.Language, key string, args ...any) string {
	langMap, ok := translations[key]
	if !ok {
		return key
	}

	tmpl, ok := langMap[lang]
	if !ok {
		tmpl, ok = langMap[models.DefaultLanguage]
		if !ok {
			return key
		}
	}

	if len(args) == 0 {
		return tmpl
	}
	return fmt.Sprintf(tmpl, args...)
}

// has reports whether key has an entry for lang itself, without fallback.
func has(lang models.Language, key string) bool {
	_, ok := translations[key][lang]
	return ok
}

// keys returns every key defined in the base language, sorted.
func keys() []string {
	out := make([]string, 0, len(translations))
	for k, m := range translations {
		if _, ok := m[models.DefaultLanguage]; ok {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}

const (
	en = models.LanguageEnglish
	ar = models.LanguageArabic
)

var translations = map[string]map[models.Language]string{
	// navigation
	"home":        {en: "Home", ar: "الرئيسية"},
	"restaurants": {en: "Restaurants", ar: "المطاعم"},
	"myPlan":      {en: "My Plan", ar: "خطتي"},
	"progress":    {en: "Progress", ar: "التقدم"},
	"profile":     {en: "Profile", ar: "الملف الشخصي"},

	// profile
	"notLoggedIn":  {en: "Not Logged In", ar: "غير مسجل الدخول"},
	"pleaseLogin":  {en: "Please log in to access your profile", ar: "يرجى تسجيل الدخول للوصول إلى ملفك الشخصي"},
	"login":        {en: "Login", ar: "تسجيل الدخول"},
	"signUp":       {en: "Sign Up", ar: "إنشاء حساب"},
	"subscription": {en: "Subscription", ar: "الاشتراك"},
	"settings":     {en: "Settings", ar: "الإعدادات"},
	"logout":       {en: "Logout", ar: "تسجيل الخروج"},

	// subscription
	"mealsRemaining":       {en: "meals remaining", ar: "وجبة متبقية"},
	"gymAccessIncluded":    {en: "Gym access included", ar: "الوصول للنادي الرياضي متضمن"},
	"noGymAccess":          {en: "No gym access", ar: "لا يوجد وصول للنادي الرياضي"},
	"managePlan":           {en: "Manage Plan", ar: "إدارة الخطة"},
	"noActiveSubscription": {en: "No active subscription", ar: "لا يوجد اشتراك نشط"},
	"subscribeNow":         {en: "Subscribe Now", ar: "اشترك الآن"},

	// settings menu
	"accountSettings": {en: "Account Settings", ar: "إعدادات الحساب"},
	"paymentMethods":  {en: "Payment Methods", ar: "طرق الدفع"},
	"notifications":   {en: "Notifications", ar: "الإشعارات"},
	"achievements":    {en: "Achievements", ar: "الإنجازات"},
	"helpSupport":     {en: "Help & Support", ar: "المساعدة والدعم"},
	"language":        {en: "Language", ar: "اللغة"},
	"english":         {en: "English", ar: "English"},
	"arabic":          {en: "العربية", ar: "العربية"},

	// alerts
	"logoutTitle":                {en: "Logout", ar: "تسجيل الخروج"},
	"logoutMessage":              {en: "Are you sure you want to logout?", ar: "هل أنت متأكد من أنك تريد تسجيل الخروج؟"},
	"cancelSubscriptionTitle":    {en: "Cancel Subscription", ar: "إلغاء الاشتراك"},
	"cancelSubscriptionMessage":  {en: "Are you sure you want to cancel your subscription?", ar: "هل أنت متأكد من أنك تريد إلغاء اشتراكك؟"},
	"yes":                        {en: "Yes", ar: "نعم"},
	"no":                         {en: "No", ar: "لا"},
	"success":                    {en: "Success", ar: "نجح"},
	"error":                      {en: "Error", ar: "خطأ"},
	"subscriptionCanceled":       {en: "Your subscription has been canceled", ar: "تم إلغاء اشتراكك"},
	"failedToCancelSubscription": {en: "Failed to cancel subscription", ar: "فشل في إلغاء الاشتراك"},

	// common
	"loading": {en: "Loading...", ar: "جاري التحميل..."},
	"retry":   {en: "Retry", ar: "إعادة المحاولة"},
	"close":   {en: "Close", ar: "إغلاق"},
	"cancel":  {en: "Cancel", ar: "إلغاء"},

	// meals
	"breakfast": {en: "Breakfast", ar: "فطور"},
	"lunch":     {en: "Lunch", ar: "غداء"},
	"dinner":    {en: "Dinner", ar: "عشاء"},

	// restaurants; no Arabic copy yet, these fall back to English
	"noRestaurantsFound":   {en: "No restaurants found"},
	"tryDifferentKeywords": {en: "Try different keywords"},
	"searchRestaurants":    {en: "Search restaurants..."},
	"loadingRestaurants":   {en: "Loading restaurants..."},

	// REPL
	"restartRequired": {en: "Restart the app to apply the new text direction.", ar: "أعد تشغيل التطبيق لتطبيق اتجاه النص الجديد."},
	"welcome":         {en: "Welcome, %s", ar: "مرحباً، %s"},
}
