// Package monitoring serves a live view of the root actions of a process
// over HTTP.
package monitoring

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"runtime/pprof"
	"strconv"
	"sync"
	"time"

	"github.com/google/pprof/profile"
	"github.com/gorilla/mux"
	"github.com/pkg/browser"
	"github.com/shirou/gopsutil/process"
	"github.com/syifan/goseth"

	"github.com/sarchlab/openkit/action"
)

// Monitor turns the set of registered root actions into a small JSON API.
type Monitor struct {
	portNumber int
	profileFor time.Duration

	rootsLock sync.Mutex
	roots     []*action.RootActionImpl

	server *http.Server
	url    string
}

// NewMonitor creates a new Monitor
func NewMonitor() *Monitor {
	return &Monitor{profileFor: time.Second}
}

// Ports below minPortNumber are never bound. Zero picks a random port.
const minPortNumber = 1000

// WithPortNumber sets the port number of the monitor.
func (m *Monitor) WithPortNumber(portNumber int) *Monitor {
	if portNumber != 0 && portNumber < minPortNumber {
		fmt.Fprintf(os.Stderr,
			"Port number %d is assigned to the monitoring server, "+
				"which is not allowed. Using a random port instead.\n", portNumber)
		portNumber = 0
	}

	m.portNumber = portNumber

	return m
}

// RegisterRootAction adds a root action to the monitored set.
func (m *Monitor) RegisterRootAction(r *action.RootActionImpl) {
	m.rootsLock.Lock()
	defer m.rootsLock.Unlock()

	m.roots = append(m.roots, r)
}

// CompleteRootAction removes a root action from the monitored set.
func (m *Monitor) CompleteRootAction(r *action.RootActionImpl) {
	m.rootsLock.Lock()
	defer m.rootsLock.Unlock()

	newRoots := make([]*action.RootActionImpl, 0, len(m.roots))
	for _, x := range m.roots {
		if x != r {
			newRoots = append(newRoots, x)
		}
	}

	m.roots = newRoots
}

func (m *Monitor) registeredRoots() []*action.RootActionImpl {
	m.rootsLock.Lock()
	defer m.rootsLock.Unlock()

	return append([]*action.RootActionImpl(nil), m.roots...)
}

// Router builds the HTTP routes of the monitor.
func (m *Monitor) Router() *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/api/roots", m.listRoots).Methods(http.MethodGet)
	r.HandleFunc("/api/root/{id}", m.rootDetails).Methods(http.MethodGet)
	r.HandleFunc("/api/resource", m.listResources).Methods(http.MethodGet)
	r.HandleFunc("/api/profile", m.collectProfile).Methods(http.MethodGet)

	return r
}

// StartServer starts serving in the background and returns the URL the
// monitor listens on.
func (m *Monitor) StartServer() (string, error) {
	actualPort := m.listenAddress()

	listener, err := net.Listen("tcp", actualPort)
	if err != nil {
		return "", fmt.Errorf("listen on %s: %w", actualPort, err)
	}

	m.url = fmt.Sprintf("http://localhost:%d",
		listener.Addr().(*net.TCPAddr).Port)
	m.server = &http.Server{
		Handler:           m.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	fmt.Fprintf(os.Stderr, "Monitoring actions with %s\n", m.url)

	go func() {
		err := m.server.Serve(listener)
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			fmt.Fprintf(os.Stderr, "Monitoring server stopped: %v\n", err)
		}
	}()

	return m.url, nil
}

func (m *Monitor) listenAddress() string {
	if m.portNumber >= minPortNumber {
		return ":" + strconv.Itoa(m.portNumber)
	}

	return ":0"
}

// OpenInBrowser opens the monitor in the default browser.
func (m *Monitor) OpenInBrowser() error {
	if m.url == "" {
		return errors.New("monitoring server is not started")
	}

	return browser.OpenURL(m.url + "/api/roots")
}

// Shutdown stops the server.
func (m *Monitor) Shutdown(ctx context.Context) error {
	if m.server == nil {
		return nil
	}

	return m.server.Shutdown(ctx)
}

type rootSummary struct {
	ID           int32  `json:"id"`
	Name         string `json:"name"`
	StartTime    int64  `json:"start_time"`
	Left         bool   `json:"left"`
	OpenChildren int    `json:"open_children"`
}

func (m *Monitor) listRoots(w http.ResponseWriter, _ *http.Request) {
	roots := m.registeredRoots()

	rsp := make([]rootSummary, 0, len(roots))
	for _, r := range roots {
		rsp = append(rsp, rootSummary{
			ID:           r.ID(),
			Name:         r.Name(),
			StartTime:    r.StartTime(),
			Left:         r.IsLeft(),
			OpenChildren: len(r.OpenChildActions()),
		})
	}

	writeJSON(w, rsp)
}

type childDetail struct {
	ID        int32
	Name      string
	StartTime int64
}

type rootDetail struct {
	ID           int32
	Name         string
	StartTime    int64
	EndTime      int64
	Left         bool
	OpenChildren []childDetail
}

func snapshotRoot(r *action.RootActionImpl) *rootDetail {
	d := &rootDetail{
		ID:        r.ID(),
		Name:      r.Name(),
		StartTime: r.StartTime(),
		EndTime:   r.EndTime(),
		Left:      r.IsLeft(),
	}

	for _, c := range r.OpenChildActions() {
		child, ok := c.(*action.ActionImpl)
		if !ok {
			continue
		}

		d.OpenChildren = append(d.OpenChildren, childDetail{
			ID:        child.ID(),
			Name:      child.Name(),
			StartTime: child.StartTime(),
		})
	}

	return d
}

func (m *Monitor) rootDetails(w http.ResponseWriter, r *http.Request) {
	root := m.findRootOr404(w, mux.Vars(r)["id"])
	if root == nil {
		return
	}

	serializer := goseth.NewSerializer()
	serializer.SetRoot(snapshotRoot(root))
	serializer.SetMaxDepth(3)

	buf := new(bytes.Buffer)
	if err := serializer.Serialize(buf); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(buf.Bytes())
}

func (m *Monitor) findRootOr404(
	w http.ResponseWriter,
	idStr string,
) *action.RootActionImpl {
	id, err := strconv.ParseInt(idStr, 10, 32)
	if err != nil {
		http.Error(w, "Invalid root action id", http.StatusBadRequest)
		return nil
	}

	for _, r := range m.registeredRoots() {
		if r.ID() == int32(id) {
			return r
		}
	}

	http.Error(w, "Root action not found", http.StatusNotFound)

	return nil
}

type resourceRsp struct {
	CPUPercent float64 `json:"cpu_percent"`
	MemorySize uint64  `json:"memory_size"`
}

func (m *Monitor) listResources(w http.ResponseWriter, _ *http.Request) {
	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	cpuPercent, err := proc.CPUPercent()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	memoryInfo, err := proc.MemoryInfo()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, resourceRsp{
		CPUPercent: cpuPercent,
		MemorySize: memoryInfo.RSS,
	})
}

func (m *Monitor) collectProfile(w http.ResponseWriter, _ *http.Request) {
	buf := bytes.NewBuffer(nil)

	if err := pprof.StartCPUProfile(buf); err != nil {
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}

	time.Sleep(m.profileFor)

	pprof.StopCPUProfile()

	prof, err := profile.ParseData(buf.Bytes())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, prof)
}

func writeJSON(w http.ResponseWriter, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(data)
}
