// +build tools

package tools

import (
	_ "github.com/maxbrunsfeld/counterfeiter/v6"
)
