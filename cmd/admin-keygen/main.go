package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"examination-backend/jwt"
	"examination-backend/log"
)

func main() {
	k := flag.String("key", "", "HMAC key used to sign the token (ACCESS_KEY of the server)")
	m := flag.String("email", "", "Email the token is issued for")
	e := flag.String("exp", time.Now().Add(time.Hour*24*365/2).Format(time.RFC3339), "RFC3339 time of the expiration date")
	flag.Parse()

	log.EnsureLogger()

	if *k == "" {
		fmt.Println("--key is required")
		os.Exit(1)
	}

	if *m == "" {
		fmt.Println("--email is required")
		os.Exit(1)
	}

	exp, err := time.Parse(time.RFC3339, *e)
	if err != nil {
		fmt.Println("--exp invalid time")
		os.Exit(1)
	}

	ss, err := jwt.NewAdminToken(*m, exp, []byte(*k))
	if err != nil {
		os.Exit(1)
	}

	fmt.Println(ss)
}
