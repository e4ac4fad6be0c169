//go:build integration

package test

import (
	"net/http"

	"github.com/alimikegami/shopping-cart-service/internal/dto"
)

func (s *IntegrationTestSuite) register(email string) string {
	resp := s.do(http.MethodPost, "/customers", dto.CustomerRequest{
		Email:    email,
		Password: "password1!",
		Username: "azpi",
	}, "")
	resp.Body.Close()
	s.Require().Equal(http.StatusCreated, resp.StatusCode)

	return s.login(email, "password1!")
}

func (s *IntegrationTestSuite) login(email string, password string) string {
	resp := s.do(http.MethodPost, "/auth/login", dto.LoginRequest{Email: email, Password: password}, "")
	s.Require().Equal(http.StatusOK, resp.StatusCode)

	login := dto.LoginResponse{}
	s.decode(resp, &login)
	s.Require().NotEmpty(login.Token)

	return login.Token
}

func (s *IntegrationTestSuite) Test_CreateCustomer() {
	type TestCase struct {
		Name           string
		Request        dto.CustomerRequest
		ExpectedStatus int
	}

	testCases := []TestCase{
		{
			Name:           "Valid request",
			Request:        dto.CustomerRequest{Email: "create@email.com", Password: "password1!", Username: "azpi"},
			ExpectedStatus: http.StatusCreated,
		},
		{
			Name:           "Duplicate email",
			Request:        dto.CustomerRequest{Email: "create@email.com", Password: "password1!", Username: "azpi"},
			ExpectedStatus: http.StatusBadRequest,
		},
		{
			Name:           "Missing email",
			Request:        dto.CustomerRequest{Password: "password1!", Username: "azpi"},
			ExpectedStatus: http.StatusBadRequest,
		},
		{
			Name:           "Invalid email",
			Request:        dto.CustomerRequest{Email: "create", Password: "password1!", Username: "azpi"},
			ExpectedStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.Name, func() {
			resp := s.do(http.MethodPost, "/customers", tc.Request, "")
			resp.Body.Close()

			s.Equal(tc.ExpectedStatus, resp.StatusCode)
		})
	}
}

func (s *IntegrationTestSuite) Test_CustomerLifecycle() {
	token := s.register("lifecycle@email.com")

	resp := s.do(http.MethodPatch, "/customers/me", dto.UpdateCustomerRequest{Username: "dwoo"}, token)
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	updated := dto.CustomerResponse{}
	s.decode(resp, &updated)
	s.Equal("dwoo", updated.Username)

	resp = s.do(http.MethodPatch, "/customers/me/password", dto.ChangePasswordRequest{OldPassword: "password1!!", NewPassword: "password2!"}, token)
	resp.Body.Close()
	s.Equal(http.StatusUnauthorized, resp.StatusCode)

	resp = s.do(http.MethodPatch, "/customers/me/password", dto.ChangePasswordRequest{OldPassword: "password1!", NewPassword: "password2!"}, token)
	resp.Body.Close()
	s.Require().Equal(http.StatusOK, resp.StatusCode)

	token = s.login("lifecycle@email.com", "password2!")

	resp = s.do(http.MethodDelete, "/customers/me", dto.DeleteCustomerRequest{Password: "password2!"}, token)
	resp.Body.Close()
	s.Require().Equal(http.StatusOK, resp.StatusCode)

	resp = s.do(http.MethodGet, "/customers/me", nil, token)
	resp.Body.Close()
	s.Equal(http.StatusUnauthorized, resp.StatusCode)

	// the same email registered again is a different account
	newToken := s.register("lifecycle@email.com")

	resp = s.do(http.MethodPatch, "/customers/me", dto.UpdateCustomerRequest{Username: "hijacked"}, token)
	resp.Body.Close()
	s.Equal(http.StatusUnauthorized, resp.StatusCode)

	resp = s.do(http.MethodGet, "/customers/me", nil, newToken)
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	current := dto.CustomerResponse{}
	s.decode(resp, &current)
	s.Equal("azpi", current.Username)
}
