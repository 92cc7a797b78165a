// SPDX-License-Identifier: GPL-2.0-only

package main

import "github.com/sirupsen/logrus"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logrus.Fatal(err)
	}
}
