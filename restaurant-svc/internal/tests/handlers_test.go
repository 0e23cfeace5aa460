package tests

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"rik-restaurant/auth"
	httpapi "rik-restaurant/restaurant-svc/internal/api/http"
	"rik-restaurant/restaurant-svc/internal/domain"
	"rik-restaurant/restaurant-svc/internal/mocks"
	"rik-restaurant/restaurant-svc/internal/service"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func setupTestRouter(t *testing.T) http.Handler {
	t.Helper()
	repo := newRepo()
	handler := &httpapi.Handler{
		Catalog:  service.NewCatalogService(repo, nil),
		Carts:    service.NewCartService(repo),
		Bookings: service.NewBookingService(repo, nil, nil),
		Orders:   service.NewOrderService(repo, repo, nil),
		Messages: service.NewMessageService(repo, nil),
		Users:    service.NewUserService(repo, repo, nil),
		Admin: service.NewAdminService(service.AdminRepositories{
			Users: repo, Bookings: repo, Orders: repo, Inquiries: repo, Menu: repo, Carts: repo,
		}),
		QR: service.DefaultQRGenerator{BaseURL: "http://localhost:8080"},
	}
	return httpapi.NewRouter(handler, auth.NewAuthenticator(testSecret))
}

func token(t *testing.T, email, role string) string {
	t.Helper()
	tok, err := auth.IssueToken(testSecret, email, role, time.Hour)
	require.NoError(t, err)
	return tok
}

func do(router http.Handler, method, path, bearer, body string) *httptest.ResponseRecorder {
	var reader *bytes.Buffer
	if body == "" {
		reader = &bytes.Buffer{}
	} else {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestHandler_health(t *testing.T) {
	router := setupTestRouter(t)
	rec := do(router, "GET", "/health", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"service":"restaurant-svc"`)
}

func TestHandler_menu(t *testing.T) {
	router := setupTestRouter(t)

	tests := []struct {
		name         string
		path         string
		expectedCode int
		expectedBody string
	}{
		{name: "list", path: "/api/menu", expectedCode: http.StatusOK, expectedBody: `"name":"Tiramisu"`},
		{name: "specials_empty", path: "/api/menu/specials", expectedCode: http.StatusOK, expectedBody: `[]`},
		{name: "item", path: "/api/menu/4", expectedCode: http.StatusOK, expectedBody: `"price":"$16.99"`},
		{name: "unknown_item", path: "/api/menu/404", expectedCode: http.StatusNotFound},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			rec := do(router, "GET", testCase.path, "", "")
			assert.Equal(t, testCase.expectedCode, rec.Code)
			if testCase.expectedBody != "" {
				assert.Contains(t, rec.Body.String(), testCase.expectedBody)
			}
		})
	}
}

func TestHandler_authorization(t *testing.T) {
	router := setupTestRouter(t)

	tests := []struct {
		name         string
		bearer       string
		expectedCode int
	}{
		{name: "guest", bearer: "", expectedCode: http.StatusForbidden},
		{name: "customer", bearer: token(t, "ann@example.com", auth.RoleUser), expectedCode: http.StatusForbidden},
		{name: "forged", bearer: "not.a.token", expectedCode: http.StatusUnauthorized},
		{name: "wrong_secret", bearer: func() string {
			tok, _ := auth.IssueToken("other-secret", "eve@example.com", auth.RoleAdmin, time.Hour)
			return tok
		}(), expectedCode: http.StatusUnauthorized},
		{name: "admin", bearer: token(t, "chef@example.com", auth.RoleAdmin), expectedCode: http.StatusOK},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			rec := do(router, "GET", "/api/admin/summary", testCase.bearer, "")
			assert.Equal(t, testCase.expectedCode, rec.Code)
		})
	}
}

func TestHandler_cartAndOrderFlow(t *testing.T) {
	router := setupTestRouter(t)
	ann := token(t, "ann@example.com", auth.RoleUser)

	rec := do(router, "POST", "/api/orders", ann, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(router, "POST", "/api/cart/items", ann, `{"itemId":"404"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	do(router, "POST", "/api/cart/items", ann, `{"itemId":"4"}`)
	rec = do(router, "POST", "/api/cart/items", ann, `{"itemId":"4"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var summary map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summary))
	assert.Equal(t, float64(2), summary["itemCount"])
	assert.Equal(t, "33.98", summary["subtotal"])
	assert.Equal(t, "2.72", summary["tax"])

	rec = do(router, "PUT", "/api/cart/items/4", ann, `{"quantity":0}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(router, "GET", "/api/cart", "", "")
	assert.Contains(t, rec.Body.String(), `"identity":"guest"`)
	assert.Contains(t, rec.Body.String(), `"items":[]`)

	rec = do(router, "POST", "/api/orders", ann, "")
	require.Equal(t, http.StatusCreated, rec.Code)
	var order domain.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &order))
	assert.Equal(t, domain.OrderPending, order.Status)
	assert.Equal(t, "36.70", order.Total.StringFixed(2))

	rec = do(router, "GET", "/api/cart", ann, "")
	assert.Contains(t, rec.Body.String(), `"itemCount":0`)

	rec = do(router, "GET", "/api/orders", ann, "")
	assert.Contains(t, rec.Body.String(), order.ID)

	rec = do(router, "GET", "/api/orders/"+order.ID+"/qrcode", ann, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))

	rec = do(router, "GET", "/api/orders/missing/qrcode", ann, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	admin := token(t, "chef@example.com", auth.RoleAdmin)
	rec = do(router, "PUT", "/api/admin/orders/"+order.ID+"/status", admin, `{"status":"completed"}`)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	rec = do(router, "PUT", "/api/admin/orders/"+order.ID+"/status", admin, `{"status":"lost"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(router, "GET", "/api/admin/orders", admin, "")
	assert.Contains(t, rec.Body.String(), `"status":"completed"`)

	rec = do(router, "GET", "/api/admin/summary", admin, "")
	assert.Contains(t, rec.Body.String(), `"totalOrders":1`)
	assert.Contains(t, rec.Body.String(), `"totalMenuItems":13`)
}

func TestHandler_bookings(t *testing.T) {
	router := setupTestRouter(t)
	date := time.Now().AddDate(0, 0, 7).Format("2006-01-02")
	draft := `{"name":"Ann","email":"ann@example.com","date":"` + date + `","time":"7:00 PM","guests":4}`

	rec := do(router, "POST", "/api/bookings/availability", "", draft)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"tableNumber":1`)

	rec = do(router, "POST", "/api/bookings", "", draft)
	require.Equal(t, http.StatusCreated, rec.Code)
	var booking domain.Booking
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &booking))
	assert.Equal(t, 1, booking.TableNumber)

	rec = do(router, "POST", "/api/bookings/availability", "", draft)
	assert.Contains(t, rec.Body.String(), `"tableNumber":2`)

	withTable := `{"name":"Bob","email":"bob@example.com","date":"` + date + `","time":"7:00 PM","tableNumber":1}`
	rec = do(router, "POST", "/api/bookings", "", withTable)
	assert.Equal(t, http.StatusConflict, rec.Code)

	past := `{"name":"Ann","email":"ann@example.com","date":"2001-01-01","time":"7:00 PM"}`
	rec = do(router, "POST", "/api/bookings", "", past)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(router, "GET", "/api/bookings/"+booking.ID+"/qrcode", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	admin := token(t, "chef@example.com", auth.RoleAdmin)
	rec = do(router, "DELETE", "/api/admin/bookings/"+booking.ID, admin, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	rec = do(router, "GET", "/api/admin/bookings", admin, "")
	assert.Equal(t, "[]\n", rec.Body.String())
}

func TestHandler_messaging(t *testing.T) {
	router := setupTestRouter(t)
	ann := token(t, "ann@example.com", auth.RoleUser)
	admin := token(t, "chef@example.com", auth.RoleAdmin)

	rec := do(router, "POST", "/api/contact", ann, `{"name":"Ann","email":"ann@example.com","subject":"Hi","message":"too short"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(router, "POST", "/api/contact", ann, `{"name":"Ann","email":"ann@example.com","subject":"Hi","message":"Is the terrace open?"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var created map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	id := created["id"].(string)
	assert.Equal(t, false, created["replied"])

	rec = do(router, "POST", "/api/admin/messages/"+id+"/reply", admin, `{"reply":""}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	rec = do(router, "POST", "/api/admin/messages/"+id+"/reply", admin, `{"reply":"Yes, from noon."}`)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(router, "GET", "/api/contact/mine", ann, "")
	assert.Contains(t, rec.Body.String(), `"hasUnseenReply":true`)
	assert.Contains(t, rec.Body.String(), `"status":"read"`)

	rec = do(router, "POST", "/api/admin/messages/read-all", admin, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	rec = do(router, "DELETE", "/api/admin/messages/"+id, admin, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	rec = do(router, "GET", "/api/admin/messages", admin, "")
	assert.Equal(t, "[]\n", rec.Body.String())
}

func TestHandler_usersAndCarts(t *testing.T) {
	router := setupTestRouter(t)
	admin := token(t, "chef@example.com", auth.RoleAdmin)
	ann := token(t, "ann@example.com", auth.RoleUser)

	rec := do(router, "POST", "/api/users", "", `{"name":"Ann","email":"ann@example.com"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
	rec = do(router, "POST", "/api/users", "", `{"name":"Ann","email":"Ann@Example.com"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
	rec = do(router, "POST", "/api/users", "", `{bad json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	do(router, "POST", "/api/cart/items", ann, `{"itemId":"1"}`)
	rec = do(router, "GET", "/api/admin/carts", admin, "")
	assert.Contains(t, rec.Body.String(), `"userEmail":"ann@example.com"`)
	assert.Contains(t, rec.Body.String(), `"totalValue":"8.99"`)

	rec = do(router, "DELETE", "/api/admin/users/ann@example.com", admin, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	rec = do(router, "GET", "/api/admin/carts", admin, "")
	assert.Equal(t, "[]\n", rec.Body.String())
	rec = do(router, "GET", "/api/admin/users", admin, "")
	assert.Equal(t, "[]\n", rec.Body.String())
}

func TestHandler_adminMenu(t *testing.T) {
	router := setupTestRouter(t)
	admin := token(t, "chef@example.com", auth.RoleAdmin)

	rec := do(router, "POST", "/api/admin/menu", admin, `{"name":"Risotto","description":"Tonight only","price":"$19.99","category":"specials"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var item domain.MenuItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &item))
	assert.Equal(t, service.DefaultRating, item.Rating)

	rec = do(router, "GET", "/api/menu/specials", "", "")
	assert.Contains(t, rec.Body.String(), `"name":"Risotto"`)

	rec = do(router, "DELETE", "/api/admin/menu/"+item.ID, admin, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(router, "POST", "/api/admin/menu", admin, `{"name":"Nameless"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_storageFailure(t *testing.T) {
	catalog := mocks.NewCatalogServiceInterface(t)
	catalog.On("ListItems", mock.Anything).Return(nil, assert.AnError).Once()

	handler := &httpapi.Handler{Catalog: catalog}
	r := mux.NewRouter()
	handler.RegisterRoutes(r)

	rec := do(r, "GET", "/api/menu", "", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), `"error"`)
}

func TestHandler_personalListsRequireSignIn(t *testing.T) {
	router := setupTestRouter(t)

	rec := do(router, "POST", "/api/contact", "", `{"name":"Gus","email":"gus@example.com","subject":"Table","message":"Do you have a terrace?"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	rec = do(router, "POST", "/api/cart/items", "", `{"itemId":"4"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	rec = do(router, "POST", "/api/orders", "", "")
	require.Equal(t, http.StatusCreated, rec.Code)

	tests := []struct {
		name         string
		path         string
		bearer       string
		expectedCode int
	}{
		{name: "guest_orders", path: "/api/orders", expectedCode: http.StatusUnauthorized},
		{name: "guest_messages", path: "/api/contact/mine", expectedCode: http.StatusUnauthorized},
		{name: "user_orders", path: "/api/orders", bearer: token(t, "ann@example.com", auth.RoleUser), expectedCode: http.StatusOK},
		{name: "user_messages", path: "/api/contact/mine", bearer: token(t, "ann@example.com", auth.RoleUser), expectedCode: http.StatusOK},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			rec := do(router, "GET", testCase.path, testCase.bearer, "")
			assert.Equal(t, testCase.expectedCode, rec.Code)
			assert.NotContains(t, rec.Body.String(), "gus@example.com")
		})
	}
}

func TestHandler_qrGenerationFailure(t *testing.T) {
	repo := newRepo()
	require.NoError(t, repo.SaveOrders(context.Background(), []domain.Order{{ID: "o1", UserEmail: "ann@example.com"}}))

	qr := mocks.NewQRGenerator(t)
	qr.On("Generate", service.QRKindOrder, "o1").Return(nil, assert.AnError).Once()

	handler := &httpapi.Handler{
		Orders: service.NewOrderService(repo, repo, nil),
		QR:     qr,
	}
	r := mux.NewRouter()
	handler.RegisterRoutes(r)

	rec := do(r, "GET", "/api/orders/o1/qrcode", "", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), `"error"`)
}

func TestStartServer_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- httpapi.StartServer(ctx, "127.0.0.1:0", setupTestRouter(t))
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after cancel")
	}
}
