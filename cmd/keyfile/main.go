// Command keyfile seals the government wallet address into an admin key
// file that the client and the web portal can unlock with a password.
package main

import (
	"flag"
	"os"

	"github.com/MKhiriev/go-cred-keeper/internal/logger"
	"github.com/MKhiriev/go-cred-keeper/internal/vault"
)

func main() {
	log := logger.NewLogger("credkeeper-keyfile")

	address := flag.String("address", "", "Government wallet address")
	password := flag.String("password", os.Getenv("KEYFILE_PASSWORD"), "Key file password (env KEYFILE_PASSWORD)")
	out := flag.String("out", "admin-keyfile.json", "Output path")
	flag.Parse()

	if *address == "" || *password == "" {
		flag.Usage()
		os.Exit(2)
	}

	sealed, err := vault.SealKeyFile(*address, *password)
	if err != nil {
		log.Fatal().Err(err).Msg("error sealing key file")
	}

	if err = os.WriteFile(*out, []byte(sealed), 0o600); err != nil {
		log.Fatal().Err(err).Str("path", *out).Msg("error writing key file")
	}

	log.Info().Str("path", *out).Str("address", *address).Msg("key file written")
}
