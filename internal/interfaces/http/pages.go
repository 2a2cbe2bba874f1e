package http

import "strings"

// Identificadores de página del cliente, uno por sección visible.
const (
	PageHome        = "home-page"
	PageLogin       = "login-page"
	PageRegister    = "register-page"
	PageVerifyEmail = "verify-email-page"
	PageProfile     = "profile-page"
	PageEmployees   = "employees-page"
	PageAccounts    = "accounts-page"
	PageDepartments = "departments-page"
	PageRequests    = "requests-page"
)

// routeTable mapea fragmento de URL → página. Fragmentos desconocidos resuelven a home.
var routeTable = map[string]string{
	"/":             PageHome,
	"/login":        PageLogin,
	"/register":     PageRegister,
	"/verify-email": PageVerifyEmail,
	"/profile":      PageProfile,
	"/employees":    PageEmployees,
	"/accounts":     PageAccounts,
	"/departments":  PageDepartments,
	"/requests":     PageRequests,
}

// authFragments fragmentos que exigen sesión; adminFragments además exigen rol admin.
var (
	authFragments  = map[string]bool{"/profile": true, "/requests": true}
	adminFragments = map[string]bool{"/employees": true, "/accounts": true, "/departments": true}
)

// ResolvePage resuelve un fragmento a la página a activar, aplicando los guards en
// orden: (a) página con sesión requerida y sin identidad → redirige a /login;
// (b) página solo-admin sin identidad o sin rol admin → redirige a /. Si ningún guard
// aplica devuelve la página con redirect vacío. El resolver no dispara renders: eso
// queda en los handlers de cada página.
func ResolvePage(fragment string, authenticated bool, role string) (page, redirect string) {
	fragment = strings.TrimPrefix(fragment, "#")
	if fragment == "" {
		fragment = "/"
	}
	page, ok := routeTable[fragment]
	if !ok {
		page = PageHome
	}
	if authFragments[fragment] && !authenticated {
		return "", "/login"
	}
	if adminFragments[fragment] && (!authenticated || role != "admin") {
		return "", "/"
	}
	return page, ""
}
