package controllers

import (
	"github.com/eventplanner/event-orders-api/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Dependencies are the collaborators the HTTP handlers need. Images is
// optional.
type Dependencies struct {
	DB     *gorm.DB
	Images services.ImageService
}

// RegisterRoutes mounts every resource route on r
func RegisterRoutes(r gin.IRouter, deps Dependencies) {
	orders := NewOrderController(services.NewOrderService(deps.DB))
	clients := NewClientController(deps.DB)
	suppliers := NewSupplierController(deps.DB)
	products := NewProductController(deps.DB, deps.Images)
	packages := NewItemPackageController(deps.DB)
	catalog := NewServiceController(deps.DB)
	leads := NewEventDetailsController(deps.DB)

	o := r.Group("/orders")
	{
		o.POST("", orders.CreateOrder)
		o.GET("", orders.ListOrders)
		o.GET("/client/:client_id", orders.ListOrdersByClient)
		o.GET("/status/:status", orders.ListOrdersByStatus)
		o.GET("/:order_id", orders.GetOrder)
		o.PUT("/:order_id", orders.UpdateOrder)
		o.PATCH("/:order_id/status", orders.UpdateOrderStatus)
		o.DELETE("/:order_id", orders.DeleteOrder)
	}

	cl := r.Group("/clients")
	{
		cl.GET("", clients.ListClients)
		cl.GET("/:id", clients.GetClient)
		cl.POST("", clients.CreateClient)
		cl.PUT("/:id", clients.UpdateClient)
		cl.DELETE("/:id", clients.DeleteClient)
	}

	s := r.Group("/suppliers")
	{
		s.GET("", suppliers.ListSuppliers)
		s.GET("/:id", suppliers.GetSupplier)
		s.POST("", suppliers.CreateSupplier)
		s.PUT("/:id", suppliers.UpdateSupplier)
		s.DELETE("/:id", suppliers.DeleteSupplier)
	}

	p := r.Group("/products")
	{
		p.GET("", products.ListProducts)
		p.GET("/:id", products.GetProduct)
		p.POST("", products.CreateProduct)
		p.PUT("/:id", products.UpdateProduct)
		p.DELETE("/:id", products.DeleteProduct)
		p.POST("/:id/image", products.UploadProductImage)
	}

	ip := r.Group("/item-packages")
	{
		ip.GET("", packages.ListItemPackages)
		ip.GET("/:id", packages.GetItemPackage)
		ip.POST("", packages.CreateItemPackage)
		ip.PUT("/:id", packages.UpdateItemPackage)
		ip.DELETE("/:id", packages.DeleteItemPackage)
	}

	sv := r.Group("/services")
	{
		sv.GET("", catalog.ListServices)
		sv.GET("/:id", catalog.GetService)
		sv.POST("", catalog.CreateService)
		sv.PUT("/:id", catalog.UpdateService)
		sv.DELETE("/:id", catalog.DeleteService)
	}

	ed := r.Group("/event-details")
	{
		ed.GET("", leads.ListEventDetails)
		ed.GET("/:id", leads.GetEventDetails)
		ed.POST("", leads.CreateEventDetails)
		ed.POST("/create", leads.CreateEventDetails)
		ed.PUT("/:id", leads.UpdateEventDetails)
		ed.DELETE("/:id", leads.DeleteEventDetails)
	}
}
