package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func NewRouter(h *Handler, mw *Middleware) http.Handler {
	mux := chi.NewRouter()
	mux.Use(mw.Log, mw.Recover)

	mux.Group(func(r chi.Router) {
		r.Use(mw.Lang)
		r.Get("/login", h.GetLogin)
		r.Post("/login", h.PostLogin)
	})

	mux.Group(func(r chi.Router) {
		r.Use(mw.SessionAuth)

		r.Get("/", h.Dashboard)
		r.Post("/logout", h.Logout)
		r.Get("/settings", h.GetSettings)
		r.Post("/settings", h.PostSettings)
		r.Get("/search", h.Search)

		r.Route("/leads", func(r chi.Router) {
			r.Get("/", h.Leads)
			r.Get("/new", h.NewLead)
			r.Post("/create", h.CreateLead)
			r.Get("/kanban", h.LeadsKanban)
			r.Get("/{id}", h.Lead)
			r.Get("/{id}/edit", h.EditLead)
			r.Post("/{id}/update", h.UpdateLead)
			r.Post("/{id}/convert", h.ConvertLead)
		})

		r.Route("/accounts", func(r chi.Router) {
			r.Get("/", h.Accounts)
			r.Get("/new", h.NewAccount)
			r.Post("/create", h.CreateAccount)
			r.Get("/{id}", h.Account)
			r.Get("/{id}/edit", h.EditAccount)
			r.Post("/{id}/update", h.UpdateAccount)
		})

		r.Route("/contacts", func(r chi.Router) {
			r.Get("/", h.Contacts)
			r.Get("/new", h.NewContact)
			r.Post("/create", h.CreateContact)
			r.Get("/{id}", h.Contact)
			r.Get("/{id}/edit", h.EditContact)
			r.Post("/{id}/update", h.UpdateContact)
		})

		r.Route("/deals", func(r chi.Router) {
			r.Get("/", h.Deals)
			r.Get("/new", h.NewDeal)
			r.Post("/create", h.CreateDeal)
			r.Get("/kanban", h.DealsKanban)
			r.Get("/{id}", h.Deal)
			r.Get("/{id}/edit", h.EditDeal)
			r.Post("/{id}/update", h.UpdateDeal)
		})

		r.Route("/products", func(r chi.Router) {
			r.Get("/", h.Products)
			r.Get("/new", h.NewProduct)
			r.Post("/create", h.CreateProduct)
			r.Get("/{id}", h.Product)
			r.Get("/{id}/edit", h.EditProduct)
			r.Post("/{id}/update", h.UpdateProduct)
		})

		r.Route("/pricebooks", func(r chi.Router) {
			r.Get("/", h.Pricebooks)
			r.Get("/new", h.NewPricebook)
			r.Post("/create", h.CreatePricebook)
			r.Get("/{id}", h.Pricebook)
			r.Get("/{id}/edit", h.EditPricebook)
			r.Post("/{id}/update", h.UpdatePricebook)
		})

		r.Route("/pricebook_entries", func(r chi.Router) {
			r.Get("/", h.PricebookEntries)
			r.Get("/new", h.NewPricebookEntry)
			r.Post("/create", h.CreatePricebookEntry)
			r.Get("/{id}", h.PricebookEntry)
			r.Get("/{id}/edit", h.EditPricebookEntry)
			r.Post("/{id}/update", h.UpdatePricebookEntry)
		})

		r.Route("/quotes", func(r chi.Router) {
			r.Get("/", h.Quotes)
			r.Get("/new", h.NewQuote)
			r.Post("/create", h.CreateQuote)
			r.Get("/{id}", h.Quote)
			r.Get("/{id}/edit", h.EditQuote)
			r.Post("/{id}/update", h.UpdateQuote)
		})

		r.Route("/quote_line_items", func(r chi.Router) {
			r.Get("/", h.QuoteLineItems)
			r.Get("/new", h.NewQuoteLineItem)
			r.Post("/create", h.CreateQuoteLineItem)
			r.Get("/{id}", h.QuoteLineItem)
			r.Get("/{id}/edit", h.EditQuoteLineItem)
			r.Post("/{id}/update", h.UpdateQuoteLineItem)
		})

		r.Route("/tasks", func(r chi.Router) {
			r.Get("/", h.Tasks)
			r.Get("/new", h.NewTask)
			r.Post("/create", h.CreateTask)
			r.Get("/kanban", h.TasksKanban)
			r.Get("/{id}", h.Task)
			r.Get("/{id}/edit", h.EditTask)
			r.Post("/{id}/update", h.UpdateTask)
		})

		r.Post("/messages/create", h.CreateMessage)
		r.Post("/shares/create", h.ShareRecord)
		r.Get("/notifications", h.Notifications)
		r.Get("/notifications/{id}", h.OpenNotification)

		r.Route("/admin", func(r chi.Router) {
			r.Get("/users", h.AdminUsers)
			r.Post("/users/create", h.AdminCreateUser)
			r.Post("/users/{id}/delete", h.AdminDeleteUser)

			r.Get("/roles", h.AdminRoles)
			r.Post("/roles/create", h.AdminCreateRole)
			r.Post("/roles/{id}/delete", h.AdminDeleteRole)

			r.Get("/profiles", h.AdminProfiles)
			r.Post("/profiles/create", h.AdminCreateProfile)
			r.Get("/profiles/{id}", h.AdminProfile)
			r.Post("/profiles/{id}/object_permissions", h.AdminCreateObjectPermission)
			r.Post("/profiles/{id}/field_permissions", h.AdminCreateFieldPermission)

			r.Get("/statuses", h.AdminStatusOptions)
			r.Post("/statuses/create", h.AdminCreateStatusOption)
			r.Post("/statuses/{id}/update", h.AdminUpdateStatusOption)
			r.Post("/statuses/{id}/delete", h.AdminDeleteStatusOption)
		})
	})

	mux.Route("/api", func(r chi.Router) {
		r.HandleFunc("/health", h.HealthHandler)

		r.Group(func(r chi.Router) {
			r.Use(mw.APISessionAuth)
			r.Post("/update_status", h.UpdateStatus)
			r.Get("/record/{model}/{id}", h.Record)
		})
	})

	return mux
}
