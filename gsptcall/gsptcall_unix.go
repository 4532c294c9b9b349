//go:build !windows

package gsptcall

import "github.com/hlandauf/gspt"

func setProcTitle(title string) {
	gspt.SetProcTitle(title)
}
