package main

import (
	"fmt"

	"github.com/divisapp/divisa/config"
	"github.com/divisapp/divisa/controllers"
	"github.com/divisapp/divisa/models"
	"github.com/divisapp/divisa/routes"
)

func main() {
	if err := config.InitializeConfig(); err != nil {
		fmt.Println(err.Error())
		return
	}
	if err := config.DataBase.AutoMigrate(&models.Member{}, &models.Profile{}); err != nil {
		fmt.Println(err.Error())
		return
	}
	controllers.InitializeServices()

	r := routes.SetupRouter()
	// running
	r.Listen(":3000")
}
