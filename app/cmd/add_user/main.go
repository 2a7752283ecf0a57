package main

import (
	"flag"
	"fmt"

	"github.com/phhgsi/a.s.academy-sub000/app/config"
	"github.com/phhgsi/a.s.academy-sub000/app/database"
	"github.com/phhgsi/a.s.academy-sub000/app/models"
	"github.com/phhgsi/a.s.academy-sub000/app/routes/auth"
)

func main() {
	email := flag.String("email", "", "account email")
	password := flag.String("password", "", "account password")
	firstName := flag.String("first-name", "", "first name")
	lastName := flag.String("last-name", "", "last name")
	role := flag.String("role", "admin", "account role")
	flag.Parse()

	if *email == "" || *password == "" {
		fmt.Println("Usage: add_user -email ... -password ... [-first-name ...] [-last-name ...] [-role ...]")
		return
	}

	config.InitDB()
	db := config.GetDB()
	defer db.Close()

	hashed, err := auth.HashPassword(*password)
	if err != nil {
		fmt.Printf("Error hashing password: %v\n", err)
		return
	}

	user := &models.User{
		Email:     *email,
		Password:  hashed,
		FirstName: *firstName,
		LastName:  *lastName,
		Role:      *role,
	}

	if err := database.CreateUser(db, user); err != nil {
		fmt.Printf("Error creating user: %v\n", err)
		return
	}

	fmt.Printf("User created successfully: %s %s (%s)\n", user.FirstName, user.LastName, user.Email)
}
