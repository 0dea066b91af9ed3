//go:build windows

package link

import (
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"syscall"
	"unicode/utf16"
	"unsafe"

	"golang.org/x/sys/windows"
)

// ntPathPrefix is the NT namespace prefix reparse points store targets
// under (e.g. `\??\C:\data`). The exact form is an OS implementation
// detail, not a stable contract; it is stripped before targets are shown.
const ntPathPrefix = `\??\`

func isPrivilegeError(err error) bool {
	var errno syscall.Errno
	return errors.As(err, &errno) && errno == windows.ERROR_PRIVILEGE_NOT_HELD
}

// createJunction creates the target directory and turns it into a mount
// point reparse point whose substitute name is the absolute source path.
// This is the structured equivalent of `mklink /J` — no shelling out.
func createJunction(source, target string) error {
	srcAbs, err := filepath.Abs(source)
	if err != nil {
		return osErr("create junction", source, err)
	}
	tgtAbs, err := filepath.Abs(target)
	if err != nil {
		return osErr("create junction", target, err)
	}

	// Junctions cannot cross volumes.
	if !strings.EqualFold(filepath.VolumeName(srcAbs), filepath.VolumeName(tgtAbs)) {
		return &OSError{Op: "create junction", Path: target, Err: windows.ERROR_NOT_SAME_DEVICE}
	}

	if err := os.Mkdir(target, 0o777); err != nil {
		return osErr("create junction", target, err)
	}

	h, err := openReparseHandle(target, windows.GENERIC_WRITE)
	if err != nil {
		os.Remove(target)
		return osErr("create junction", target, err)
	}
	defer windows.CloseHandle(h)

	data := mountPointReparseData(srcAbs)
	var returned uint32
	err = windows.DeviceIoControl(h, windows.FSCTL_SET_REPARSE_POINT,
		&data[0], uint32(len(data)), nil, 0, &returned, nil)
	if err != nil {
		os.Remove(target)
		return osErr("create junction", target, err)
	}
	return nil
}

// mountPointReparseData encodes a REPARSE_DATA_BUFFER for a mount point
// whose substitute name is the NT form of sourceAbs and whose print name is
// the path as given.
func mountPointReparseData(sourceAbs string) []byte {
	substitute := utf16.Encode([]rune(ntPathPrefix + sourceAbs))
	printName := utf16.Encode([]rune(sourceAbs))

	// PathBuffer: substitute + NUL + print + NUL, lengths in bytes without
	// the terminators.
	subLen := uint16(len(substitute) * 2)
	printLen := uint16(len(printName) * 2)
	pathBufLen := subLen + 2 + printLen + 2

	// Mount point data: 4 offset/length words + path buffer.
	dataLen := uint16(8) + pathBufLen

	buf := make([]byte, 0, 8+dataLen)
	buf = binary.LittleEndian.AppendUint32(buf, windows.IO_REPARSE_TAG_MOUNT_POINT)
	buf = binary.LittleEndian.AppendUint16(buf, dataLen)
	buf = binary.LittleEndian.AppendUint16(buf, 0) // Reserved
	buf = binary.LittleEndian.AppendUint16(buf, 0) // SubstituteNameOffset
	buf = binary.LittleEndian.AppendUint16(buf, subLen)
	buf = binary.LittleEndian.AppendUint16(buf, subLen+2) // PrintNameOffset
	buf = binary.LittleEndian.AppendUint16(buf, printLen)
	for _, u := range substitute {
		buf = binary.LittleEndian.AppendUint16(buf, u)
	}
	buf = binary.LittleEndian.AppendUint16(buf, 0)
	for _, u := range printName {
		buf = binary.LittleEndian.AppendUint16(buf, u)
	}
	buf = binary.LittleEndian.AppendUint16(buf, 0)
	return buf
}

// classifyReparse distinguishes junctions from symbolic links for a path
// whose Lstat mode already carries the symlink bit. On a failed tag query
// the mode bit wins and the path classifies as a symlink.
func classifyReparse(path string) Kind {
	tag, _, err := reparseData(path)
	if err == nil && tag == windows.IO_REPARSE_TAG_MOUNT_POINT {
		return Junction
	}
	return SymLink
}

// isJunction reports whether a directory (without the symlink mode bit)
// carries a mount point reparse tag. Query failures degrade to false.
func isJunction(path string) bool {
	tag, _, err := reparseData(path)
	return err == nil && tag == windows.IO_REPARSE_TAG_MOUNT_POINT
}

// junctionTarget returns the junction's substitute name with the NT prefix
// stripped.
func junctionTarget(path string) (string, error) {
	tag, target, err := reparseData(path)
	if err != nil {
		return "", osErr("query reparse point", path, err)
	}
	if tag != windows.IO_REPARSE_TAG_MOUNT_POINT {
		return "", &OSError{Op: "query reparse point", Path: path, Err: errors.New("not a mount point reparse tag")}
	}
	return strings.TrimPrefix(target, ntPathPrefix), nil
}

// reparseData reads the reparse point attached to path via
// FSCTL_GET_REPARSE_POINT and returns the tag and, for mount points, the
// raw substitute name. Symbolic link buffers are resolved through
// os.Readlink instead, so only the mount point layout is parsed here.
func reparseData(path string) (tag uint32, substitute string, err error) {
	h, err := openReparseHandle(path, windows.GENERIC_READ)
	if err != nil {
		return 0, "", err
	}
	defer windows.CloseHandle(h)

	buf := make([]byte, windows.MAXIMUM_REPARSE_DATA_BUFFER_SIZE)
	var returned uint32
	err = windows.DeviceIoControl(h, windows.FSCTL_GET_REPARSE_POINT,
		nil, 0, &buf[0], uint32(len(buf)), &returned, nil)
	if err != nil {
		return 0, "", err
	}

	tag = binary.LittleEndian.Uint32(buf[0:4])
	if tag != windows.IO_REPARSE_TAG_MOUNT_POINT {
		return tag, "", nil
	}

	// Mount point layout after the 8-byte header:
	// SubstituteNameOffset, SubstituteNameLength, PrintNameOffset,
	// PrintNameLength (bytes), then PathBuffer at offset 16.
	subOff := binary.LittleEndian.Uint16(buf[8:10])
	subLen := binary.LittleEndian.Uint16(buf[10:12])
	start := 16 + int(subOff)
	end := start + int(subLen)
	if end > int(returned) || end > len(buf) {
		return tag, "", errors.New("malformed reparse point buffer")
	}

	u16 := make([]uint16, subLen/2)
	for i := range u16 {
		u16[i] = binary.LittleEndian.Uint16(buf[start+2*i : start+2*i+2])
	}
	return tag, string(utf16.Decode(u16)), nil
}

// openReparseHandle opens path without following its reparse point.
func openReparseHandle(path string, access uint32) (windows.Handle, error) {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return windows.InvalidHandle, err
	}
	return windows.CreateFile(p, access,
		windows.FILE_SHARE_READ|windows.FILE_SHARE_WRITE|windows.FILE_SHARE_DELETE,
		nil, windows.OPEN_EXISTING,
		windows.FILE_FLAG_BACKUP_SEMANTICS|windows.FILE_FLAG_OPEN_REPARSE_POINT, 0)
}

// linkCount returns the number of directory entries referencing the file's
// content, from GetFileInformationByHandle.
func linkCount(path string) (uint32, error) {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return 0, err
	}
	h, err := windows.CreateFile(p, 0,
		windows.FILE_SHARE_READ|windows.FILE_SHARE_WRITE|windows.FILE_SHARE_DELETE,
		nil, windows.OPEN_EXISTING, windows.FILE_FLAG_BACKUP_SEMANTICS, 0)
	if err != nil {
		return 0, err
	}
	defer windows.CloseHandle(h)

	var info windows.ByHandleFileInformation
	if err := windows.GetFileInformationByHandle(h, &info); err != nil {
		return 0, err
	}
	return info.NumberOfLinks, nil
}

var (
	modkernel32           = windows.NewLazySystemDLL("kernel32.dll")
	procFindFirstFileName = modkernel32.NewProc("FindFirstFileNameW")
	procFindNextFileName  = modkernel32.NewProc("FindNextFileNameW")
)

// HardLinkNames enumerates every directory entry referencing the same file
// content as path. Hard links are symmetric, so this is the closest thing
// to a "target" a hard link has. Names come back volume-relative and are
// re-anchored on the path's volume.
func HardLinkNames(path string) ([]string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, osErr("list hardlink names", path, err)
	}
	vol := filepath.VolumeName(abs)

	p, err := windows.UTF16PtrFromString(abs)
	if err != nil {
		return nil, osErr("list hardlink names", path, err)
	}

	buf := make([]uint16, windows.MAX_PATH)
	n := uint32(len(buf))
	h, _, callErr := procFindFirstFileName.Call(
		uintptr(unsafe.Pointer(p)), 0,
		uintptr(unsafe.Pointer(&n)), uintptr(unsafe.Pointer(&buf[0])))
	if windows.Handle(h) == windows.InvalidHandle {
		return nil, osErr("list hardlink names", path, callErr)
	}
	defer windows.FindClose(windows.Handle(h))

	var names []string
	for {
		names = append(names, vol+windows.UTF16ToString(buf))

		n = uint32(len(buf))
		ret, _, callErr := procFindNextFileName.Call(h,
			uintptr(unsafe.Pointer(&n)), uintptr(unsafe.Pointer(&buf[0])))
		if ret == 0 {
			var errno syscall.Errno
			if errors.As(callErr, &errno) && errno == windows.ERROR_HANDLE_EOF {
				return names, nil
			}
			return nil, osErr("list hardlink names", path, callErr)
		}
	}
}
