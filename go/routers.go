package bookstoreserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Route is the information for every URI.
type Route struct {
	// Name is the name of this Route.
	Name string
	// Method is the string for the HTTP method. ex) GET, POST etc..
	Method string
	// Pattern is the pattern of the URI.
	Pattern string
	// HandlerFunc is the handler function of this route.
	HandlerFunc gin.HandlerFunc
}

// ApiHandleFunctions holds the API handlers for every surface of the service.
type ApiHandleFunctions struct {
	OrderAPI    OrderAPI
	BookAPI     BookAPI
	AuthorAPI   AuthorAPI
	CategoryAPI CategoryAPI
	CustomerAPI CustomerAPI
}

// NewRouter returns a new router.
func NewRouter(handleFunctions ApiHandleFunctions) *gin.Engine {
	return NewRouterWithGinEngine(gin.Default(), handleFunctions)
}

// NewRouterWithGinEngine adds all routes to an existing gin engine.
func NewRouterWithGinEngine(router *gin.Engine, handleFunctions ApiHandleFunctions) *gin.Engine {
	for _, route := range getRoutes(handleFunctions) {
		if route.HandlerFunc == nil {
			route.HandlerFunc = DefaultHandleFunc
		}
		switch route.Method {
		case http.MethodGet:
			router.GET(route.Pattern, route.HandlerFunc)
		case http.MethodPost:
			router.POST(route.Pattern, route.HandlerFunc)
		case http.MethodPut:
			router.PUT(route.Pattern, route.HandlerFunc)
		case http.MethodPatch:
			router.PATCH(route.Pattern, route.HandlerFunc)
		case http.MethodDelete:
			router.DELETE(route.Pattern, route.HandlerFunc)
		}
	}
	return router
}

// DefaultHandleFunc is the default handler for routes without one configured.
func DefaultHandleFunc(c *gin.Context) {
	c.String(http.StatusNotImplemented, "501 not implemented")
}

func getRoutes(handleFunctions ApiHandleFunctions) []Route {
	return []Route{
		{
			"CreateOrder",
			http.MethodPost,
			"/v1/orders",
			handleFunctions.OrderAPI.CreateOrder,
		},
		{
			"UpdateOrder",
			http.MethodPut,
			"/v1/orders/:orderId",
			handleFunctions.OrderAPI.UpdateOrder,
		},
		{
			"DeleteOrder",
			http.MethodDelete,
			"/v1/orders/:orderId",
			handleFunctions.OrderAPI.DeleteOrder,
		},
		{
			"ListOrders",
			http.MethodGet,
			"/v1/orders",
			handleFunctions.OrderAPI.ListOrders,
		},
		{
			"AddBook",
			http.MethodPost,
			"/v1/books",
			handleFunctions.BookAPI.AddBook,
		},
		{
			"UpdateBook",
			http.MethodPut,
			"/v1/books/:bookId",
			handleFunctions.BookAPI.UpdateBook,
		},
		{
			"GetBookById",
			http.MethodGet,
			"/v1/books/:bookId",
			handleFunctions.BookAPI.GetBookById,
		},
		{
			"ListBooks",
			http.MethodGet,
			"/v1/books",
			handleFunctions.BookAPI.ListBooks,
		},
		{
			"DeleteBook",
			http.MethodDelete,
			"/v1/books/:bookId",
			handleFunctions.BookAPI.DeleteBook,
		},
		{
			"AddAuthor",
			http.MethodPost,
			"/v1/authors",
			handleFunctions.AuthorAPI.AddAuthor,
		},
		{
			"UpdateAuthor",
			http.MethodPut,
			"/v1/authors/:authorId",
			handleFunctions.AuthorAPI.UpdateAuthor,
		},
		{
			"GetAuthorById",
			http.MethodGet,
			"/v1/authors/:authorId",
			handleFunctions.AuthorAPI.GetAuthorById,
		},
		{
			"ListAuthors",
			http.MethodGet,
			"/v1/authors",
			handleFunctions.AuthorAPI.ListAuthors,
		},
		{
			"DeleteAuthor",
			http.MethodDelete,
			"/v1/authors/:authorId",
			handleFunctions.AuthorAPI.DeleteAuthor,
		},
		{
			"AddCategory",
			http.MethodPost,
			"/v1/categories",
			handleFunctions.CategoryAPI.AddCategory,
		},
		{
			"UpdateCategory",
			http.MethodPut,
			"/v1/categories/:categoryId",
			handleFunctions.CategoryAPI.UpdateCategory,
		},
		{
			"GetCategoryById",
			http.MethodGet,
			"/v1/categories/:categoryId",
			handleFunctions.CategoryAPI.GetCategoryById,
		},
		{
			"ListCategories",
			http.MethodGet,
			"/v1/categories",
			handleFunctions.CategoryAPI.ListCategories,
		},
		{
			"DeleteCategory",
			http.MethodDelete,
			"/v1/categories/:categoryId",
			handleFunctions.CategoryAPI.DeleteCategory,
		},
		{
			"AddCustomer",
			http.MethodPost,
			"/v1/customers",
			handleFunctions.CustomerAPI.AddCustomer,
		},
		{
			"UpdateCustomer",
			http.MethodPut,
			"/v1/customers/:customerId",
			handleFunctions.CustomerAPI.UpdateCustomer,
		},
		{
			"GetCustomerById",
			http.MethodGet,
			"/v1/customers/:customerId",
			handleFunctions.CustomerAPI.GetCustomerById,
		},
		{
			"ListCustomers",
			http.MethodGet,
			"/v1/customers",
			handleFunctions.CustomerAPI.ListCustomers,
		},
		{
			"DeleteCustomer",
			http.MethodDelete,
			"/v1/customers/:customerId",
			handleFunctions.CustomerAPI.DeleteCustomer,
		},
	}
}
