//go:build !unix

package adapter

import "os"

func isWritable(_ string, info os.FileInfo) bool {
	return info.Mode().Perm()&0o200 != 0
}
