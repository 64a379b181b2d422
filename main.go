// Copyright 2026 HSurvey Authors
// SPDX-License-Identifier: AGPL-3.0

package main

import "github.com/SOUSSIoumaima/hsurvey-front/cmd"

func main() {
	cmd.Execute()
}
