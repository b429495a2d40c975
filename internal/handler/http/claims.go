package http

import (
	"fmt"
	"net/http"

	"github.com/go-chi/jwtauth/v5"
)

// tokenClaims is the identity carried by the access token. Services never read
// it; handlers copy the fields into request DTOs.
type tokenClaims struct {
	EmployeeID string
	CompanyID  string
	Role       string
}

func claimsFromRequest(r *http.Request) (tokenClaims, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return tokenClaims{}, err
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return tokenClaims{}, fmt.Errorf("missing employee_id claim")
	}
	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return tokenClaims{}, fmt.Errorf("missing company_id claim")
	}
	role, _ := claims["role"].(string)

	return tokenClaims{
		EmployeeID: employeeID,
		CompanyID:  companyID,
		Role:       role,
	}, nil
}
