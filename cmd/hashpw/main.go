// Herramienta de línea de comandos para generar hashes bcrypt.
// Los usuarios se dan de alta por SQL (no hay registro en la API), así que
// el alta necesita un hash listo para insertar en "user".password_hash.
//
// Uso:
//
//	go run ./cmd/hashpw 'mi-contraseña'
package main

import (
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	if len(os.Args) != 2 || os.Args[1] == "" {
		fmt.Fprintln(os.Stderr, "uso: hashpw <contraseña>")
		os.Exit(2)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(os.Args[1]), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintln(os.Stderr, "generar hash:", err)
		os.Exit(1)
	}
	fmt.Println(string(hash))
}
