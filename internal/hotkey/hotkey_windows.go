//go:build windows

package hotkey

import (
	"runtime"
	"syscall"
	"time"
	"unsafe"

	"github.com/Swatto86/QuickRun/internal/debug"
)

var (
	user32               = syscall.NewLazyDLL("user32.dll")
	procSetWindowsHookEx = user32.NewProc("SetWindowsHookExW")
	procUnhookHookEx     = user32.NewProc("UnhookWindowsHookEx")
	procCallNextHookEx   = user32.NewProc("CallNextHookEx")
	procPeekMessage      = user32.NewProc("PeekMessageW")
	procGetAsyncKeyState = user32.NewProc("GetAsyncKeyState")
)

const (
	whKeyboardLL = 13
	wmSysKeyDown = 0x0104

	vkSpace = 0x20
	vkMenu  = 0x12 // Alt

	pmRemove = 1
)

type kbdllHookStruct struct {
	VkCode      uint32
	ScanCode    uint32
	Flags       uint32
	Time        uint32
	DwExtraInfo uintptr
}

type msg struct {
	HWnd    uintptr
	Message uint32
	WParam  uintptr
	LParam  uintptr
	Time    uint32
	Pt      struct{ X, Y int32 }
}

// Listener watches for Alt+Space globally via a low-level keyboard hook
// and consumes the keypress so Windows does not open the system menu.
type Listener struct {
	onToggle func()
	quit     chan struct{}
	hook     uintptr
}

func New(onToggle func()) *Listener {
	return &Listener{
		onToggle: onToggle,
		quit:     make(chan struct{}),
	}
}

func (l *Listener) Start() {
	go l.pump()
}

func (l *Listener) Stop() {
	close(l.quit)
}

func (l *Listener) pump() {
	log := debug.Get()

	// A low-level hook only receives events on the thread that installed
	// it, and that thread must keep a message pump alive.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	callback := syscall.NewCallback(func(nCode int, wParam, lParam uintptr) uintptr {
		if nCode >= 0 && wParam == wmSysKeyDown {
			kb := (*kbdllHookStruct)(unsafe.Pointer(lParam))
			if kb.VkCode == vkSpace && altIsDown() {
				// Run off the hook thread; the hook must return fast.
				go l.onToggle()
				return 1 // consume the keypress
			}
		}
		ret, _, _ := procCallNextHookEx.Call(0, uintptr(nCode), wParam, lParam)
		return ret
	})

	hook, _, hookErr := procSetWindowsHookEx.Call(whKeyboardLL, callback, 0, 0)
	if hook == 0 {
		log.Error("hotkey: SetWindowsHookEx failed", map[string]interface{}{
			"error": hookErr.Error(),
		})
		return
	}
	l.hook = hook
	log.Info("hotkey: Alt+Space hook installed")

	var m msg
	for {
		select {
		case <-l.quit:
			procUnhookHookEx.Call(l.hook)
			log.Info("hotkey: hook removed")
			return
		default:
		}

		ret, _, _ := procPeekMessage.Call(uintptr(unsafe.Pointer(&m)), 0, 0, 0, pmRemove)
		if ret != 0 {
			continue
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func altIsDown() bool {
	state, _, _ := procGetAsyncKeyState.Call(vkMenu)
	return state&0x8000 != 0
}
