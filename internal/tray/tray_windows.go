//go:build windows

package tray

import (
	"fmt"
	"runtime"
	"syscall"
	"unsafe"

	"github.com/Swatto86/QuickRun/internal/debug"
)

var (
	shell32             = syscall.NewLazyDLL("shell32.dll")
	user32              = syscall.NewLazyDLL("user32.dll")
	kernel32            = syscall.NewLazyDLL("kernel32.dll")
	procShellNotifyIcon = shell32.NewProc("Shell_NotifyIconW")
	procExtractIconEx   = shell32.NewProc("ExtractIconExW")
	procCreatePopupMenu = user32.NewProc("CreatePopupMenu")
	procAppendMenu      = user32.NewProc("AppendMenuW")
	procTrackPopupMenu  = user32.NewProc("TrackPopupMenuEx")
	procCreateWindowEx  = user32.NewProc("CreateWindowExW")
	procDefWindowProc   = user32.NewProc("DefWindowProcW")
	procRegisterClassEx = user32.NewProc("RegisterClassExW")
	procGetMessage      = user32.NewProc("GetMessageW")
	procTranslateMsg    = user32.NewProc("TranslateMessage")
	procDispatchMsg     = user32.NewProc("DispatchMessageW")
	procDestroyMenu     = user32.NewProc("DestroyMenu")
	procGetCursorPos    = user32.NewProc("GetCursorPos")
	procSetForeground   = user32.NewProc("SetForegroundWindow")
	procPostMessage     = user32.NewProc("PostMessageW")
	procGetModuleHandle = kernel32.NewProc("GetModuleHandleW")
	procGetModuleFile   = kernel32.NewProc("GetModuleFileNameW")
	procLoadIcon        = user32.NewProc("LoadIconW")
)

const (
	nimAdd    = 0x00000000
	nimDelete = 0x00000002

	nifMessage = 0x00000001
	nifIcon    = 0x00000002
	nifTip     = 0x00000004

	wmTrayIcon  = 0x0400 + 1 // WM_USER + 1
	wmCommand   = 0x0111
	wmClose     = 0x0010
	wmLButtonUp = 0x0202
	wmRButtonUp = 0x0205

	mfString    = 0x0000
	mfSeparator = 0x0800

	tpmBottomAlign = 0x0020
	tpmReturnCmd   = 0x0100

	idiApplication = 32512

	idmSettings = 1001
	idmUpdates  = 1002
	idmQuit     = 1003
)

type notifyIconData struct {
	CbSize           uint32
	HWnd             uintptr
	UID              uint32
	UFlags           uint32
	UCallbackMessage uint32
	HIcon            uintptr
	SzTip            [128]uint16
}

type wndClassEx struct {
	CbSize        uint32
	Style         uint32
	LpfnWndProc   uintptr
	CbClsExtra    int32
	CbWndExtra    int32
	HInstance     uintptr
	HIcon         uintptr
	HCursor       uintptr
	HbrBackground uintptr
	LpszMenuName  *uint16
	LpszClassName *uint16
	HIconSm       uintptr
}

type point struct {
	X, Y int32
}

type winMsg struct {
	HWnd    uintptr
	Message uint32
	WParam  uintptr
	LParam  uintptr
	Time    uint32
	Pt      point
}

// Callbacks are invoked from the tray's message loop. OnToggle fires on
// a left click; the rest come from the context menu.
type Callbacks struct {
	OnToggle       func()
	OnSettings     func()
	OnCheckUpdates func()
	OnQuit         func()
}

// Icon is the QuickRun system tray presence: a notify icon owned by a
// hidden window running its own message loop.
type Icon struct {
	callbacks Callbacks
	hwnd      uintptr
	nid       notifyIconData
}

func New(callbacks Callbacks) *Icon {
	return &Icon{callbacks: callbacks}
}

func (t *Icon) Start() {
	go t.run()
}

func (t *Icon) Stop() {
	procShellNotifyIcon.Call(nimDelete, uintptr(unsafe.Pointer(&t.nid)))
	if t.hwnd != 0 {
		procPostMessage.Call(t.hwnd, wmClose, 0, 0)
	}
}

func (t *Icon) run() {
	log := debug.Get()

	// The hidden window and its message loop must share one OS thread.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	hInstance, _, _ := procGetModuleHandle.Call(0)
	className, _ := syscall.UTF16PtrFromString("QuickRunTray")

	wc := wndClassEx{
		CbSize:        uint32(unsafe.Sizeof(wndClassEx{})),
		LpfnWndProc:   syscall.NewCallback(t.wndProc),
		HInstance:     hInstance,
		LpszClassName: className,
	}

	if atom, _, err := procRegisterClassEx.Call(uintptr(unsafe.Pointer(&wc))); atom == 0 {
		log.Error("tray: RegisterClassEx failed", map[string]interface{}{"error": fmt.Sprintf("%v", err)})
		return
	}

	t.hwnd, _, _ = procCreateWindowEx.Call(
		0,
		uintptr(unsafe.Pointer(className)),
		0, 0,
		0, 0, 0, 0, 0, 0,
		hInstance, 0,
	)
	if t.hwnd == 0 {
		log.Error("tray: CreateWindowEx failed")
		return
	}

	icon := executableIcon()
	if icon == 0 {
		icon, _, _ = procLoadIcon.Call(0, idiApplication)
	}

	t.nid = notifyIconData{
		CbSize:           uint32(unsafe.Sizeof(notifyIconData{})),
		HWnd:             t.hwnd,
		UID:              1,
		UFlags:           nifMessage | nifIcon | nifTip,
		UCallbackMessage: wmTrayIcon,
		HIcon:            icon,
	}
	tip, _ := syscall.UTF16FromString("QuickRun — Press Alt+Space")
	copy(t.nid.SzTip[:], tip)

	if ok, _, err := procShellNotifyIcon.Call(nimAdd, uintptr(unsafe.Pointer(&t.nid))); ok == 0 {
		log.Error("tray: Shell_NotifyIcon failed", map[string]interface{}{"error": fmt.Sprintf("%v", err)})
		return
	}
	log.Info("tray: icon added")

	var m winMsg
	for {
		ret, _, _ := procGetMessage.Call(uintptr(unsafe.Pointer(&m)), 0, 0, 0)
		if ret == 0 || ret == uintptr(^uintptr(0)) {
			log.Info("tray: message loop ended")
			return
		}
		procTranslateMsg.Call(uintptr(unsafe.Pointer(&m)))
		procDispatchMsg.Call(uintptr(unsafe.Pointer(&m)))
	}
}

// executableIcon extracts the first icon embedded in the running exe,
// or 0 when there is none.
func executableIcon() uintptr {
	buf := make([]uint16, 260)
	length, _, _ := procGetModuleFile.Call(0, uintptr(unsafe.Pointer(&buf[0])), 260)
	if length == 0 {
		return 0
	}
	exePath, _ := syscall.UTF16PtrFromString(syscall.UTF16ToString(buf[:length]))

	var icon uintptr
	count, _, _ := procExtractIconEx.Call(uintptr(unsafe.Pointer(exePath)), 0, uintptr(unsafe.Pointer(&icon)), 0, 1)
	if count == 0 {
		return 0
	}
	return icon
}

func (t *Icon) wndProc(hwnd, m, wParam, lParam uintptr) uintptr {
	switch m {
	case wmTrayIcon:
		switch lParam {
		case wmLButtonUp:
			t.callbacks.OnToggle()
		case wmRButtonUp:
			t.showMenu()
		}
		return 0
	case wmCommand:
		t.dispatch(wParam & 0xFFFF)
		return 0
	}
	ret, _, _ := procDefWindowProc.Call(hwnd, m, wParam, lParam)
	return ret
}

func (t *Icon) showMenu() {
	menu, _, _ := procCreatePopupMenu.Call()
	if menu == 0 {
		return
	}
	defer procDestroyMenu.Call(menu)

	appendMenuItem(menu, idmSettings, "Settings")
	appendMenuItem(menu, idmUpdates, "Check for Updates")
	procAppendMenu.Call(menu, mfSeparator, 0, 0)
	appendMenuItem(menu, idmQuit, "Quit")

	var cursor point
	procGetCursorPos.Call(uintptr(unsafe.Pointer(&cursor)))

	// Required before TrackPopupMenu or the menu never dismisses.
	procSetForeground.Call(t.hwnd)

	selected, _, _ := procTrackPopupMenu.Call(
		menu,
		tpmBottomAlign|tpmReturnCmd,
		uintptr(cursor.X), uintptr(cursor.Y),
		t.hwnd, 0,
	)
	t.dispatch(selected)

	// Null message forces the menu to give up focus (Windows quirk).
	procPostMessage.Call(t.hwnd, 0, 0, 0)
}

func (t *Icon) dispatch(id uintptr) {
	switch id {
	case idmSettings:
		if t.callbacks.OnSettings != nil {
			t.callbacks.OnSettings()
		}
	case idmUpdates:
		if t.callbacks.OnCheckUpdates != nil {
			t.callbacks.OnCheckUpdates()
		}
	case idmQuit:
		t.callbacks.OnQuit()
	}
}

func appendMenuItem(menu uintptr, id uintptr, label string) {
	text, _ := syscall.UTF16PtrFromString(label)
	procAppendMenu.Call(menu, mfString, id, uintptr(unsafe.Pointer(text)))
}
