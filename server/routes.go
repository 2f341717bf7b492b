package server

import (
	"net/http"

	"inventaris/models"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (s *Server) InjectRoutes() *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	r.Route("/api", func(api chi.Router) {
		// public
		api.Post("/login", s.EmployeeHandler.Login)

		api.Group(func(protected chi.Router) {
			protected.Use(s.Middleware.JWTAuthMiddleware())

			// read endpoints are open to any authenticated employee
			protected.Get("/catalogs/{catalog}", s.CatalogHandler.ListOptions)
			protected.Get("/assets", s.AssetHandler.GetAssets)
			protected.Get("/assets/{id}", s.AssetHandler.GetAsset)
			protected.Get("/assignments", s.AssignmentHandler.GetAssignments)
			protected.Get("/phone-accounts", s.PhoneHandler.GetPhoneAccounts)
			protected.Get("/billing-records", s.PhoneHandler.GetBillingRecords)
			protected.Get("/isps", s.IspHandler.GetIsps)
			protected.Get("/isp-reports", s.IspHandler.GetIspReports)
			protected.Get("/problems", s.IspHandler.GetProblems)
			protected.Get("/employees", s.EmployeeHandler.GetEmployees)
			protected.Get("/employees/{id}", s.EmployeeHandler.GetEmployee)

			// mutations require the administrator role
			protected.Group(func(admin chi.Router) {
				admin.Use(s.Middleware.RequireRole(models.AdministratorRole))

				admin.Post("/catalogs/{catalog}", s.CatalogHandler.CreateOption)
				admin.Put("/catalogs/{catalog}/{id}", s.CatalogHandler.UpdateOption)
				admin.Delete("/catalogs/{catalog}/{id}", s.CatalogHandler.DeleteOption)

				admin.Post("/assets", s.AssetHandler.CreateAsset)
				admin.Put("/assets/{id}", s.AssetHandler.UpdateAsset)
				admin.Delete("/assets/{id}", s.AssetHandler.DeleteAsset)

				admin.Post("/assignments", s.AssignmentHandler.CreateAssignment)
				admin.Put("/assignments/{id}", s.AssignmentHandler.UpdateAssignment)
				admin.Delete("/assignments/{id}", s.AssignmentHandler.DeleteAssignment)

				admin.Post("/phone-accounts", s.PhoneHandler.CreatePhoneAccount)
				admin.Put("/phone-accounts/{id}", s.PhoneHandler.UpdatePhoneAccount)
				admin.Delete("/phone-accounts/{id}", s.PhoneHandler.DeletePhoneAccount)

				admin.Post("/billing-records", s.PhoneHandler.CreateBillingRecord)
				admin.Delete("/billing-records/{id}", s.PhoneHandler.DeleteBillingRecord)

				admin.Post("/isps", s.IspHandler.CreateIsp)
				admin.Put("/isps/{id}", s.IspHandler.UpdateIsp)
				admin.Delete("/isps/{id}", s.IspHandler.DeleteIsp)

				admin.Post("/isp-reports", s.IspHandler.CreateIspReport)
				admin.Put("/isp-reports/{id}", s.IspHandler.UpdateIspReport)
				admin.Delete("/isp-reports/{id}", s.IspHandler.DeleteIspReport)

				admin.Post("/problems", s.IspHandler.CreateProblem)
				admin.Put("/problems/{id}", s.IspHandler.UpdateProblem)
				admin.Delete("/problems/{id}", s.IspHandler.DeleteProblem)

				admin.Post("/employees", s.EmployeeHandler.CreateEmployee)
				admin.Put("/employees/{id}", s.EmployeeHandler.UpdateEmployee)
				admin.Delete("/employees/{id}", s.EmployeeHandler.DeactivateEmployee)
			})
		})
	})

	return r
}
