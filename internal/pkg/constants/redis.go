package constants

// Redis key formats
const (
	// Live rider positions per tenant
	KeyRiderGeo = "riders:geo:%s" // Format: riders:geo:{company_id}

	// Rate Limiting
	KeyRateLimit = "rate:limit:%s:%s" // Format: rate:limit:{resource}:{ip}
)

// Rate limited resources
const (
	RateLimitCompanyLogin = "company_login"
	RateLimitAgentLogin   = "agent_login"
	RateLimitSignup       = "signup"
)
