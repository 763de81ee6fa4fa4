package main

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// hashPassword prints a bcrypt hash suitable for the ADMIN_PASSWORDHASH setting.
func (cli *commandLine) hashPassword(pwd string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(pwd), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	fmt.Println(string(hash))
	return nil
}
