package handler

import (
	"storefront-service/internal/cart"
	"storefront-service/internal/checkout"
	"storefront-service/internal/store"
	"storefront-service/pkg/config"
	"storefront-service/pkg/imghost"
)

var (
	appStore    *store.Store
	carts       *cart.Service
	checkoutSvc *checkout.Service
	uploader    *imghost.Client
	appConfig   *config.Config
)

// Setup wires the handler package to its services. Called once from main.
func Setup(st *store.Store, c *cart.Service, co *checkout.Service, up *imghost.Client, cfg *config.Config) {
	appStore = st
	carts = c
	checkoutSvc = co
	uploader = up
	appConfig = cfg
}
