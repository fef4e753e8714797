package main

import "github.com/DRSN-tech/pricing-backend/internal/app"

//	@title			Component Pricing API
//	@version		1.0
//	@description	Сервис расчета цен на компоненты ПК по записям каталога

//	@host		localhost:8080
//	@BasePath	/api/v1

func main() {
	app.Run()
}
