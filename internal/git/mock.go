package git

// Compile-time check that MockRepository implements Repository.
var _ Repository = (*MockRepository)(nil)

// MockRepository is a configurable mock implementation of Repository for
// testing. Each method is backed by a function field; a nil field returns a
// sensible zero value.
type MockRepository struct {
	PathFunc                          func() string
	WorkingDirectoryFunc              func() string
	IsBareFunc                        func() bool
	HeadFunc                          func() (HeadState, error)
	HeadCommitMessageFunc             func() (string, error)
	StatusFunc                        func() (WorkingTreeStatus, error)
	BranchesFunc                      func() ([]BranchRecord, error)
	UpstreamRefFunc                   func(string) (string, bool, error)
	AheadBehindFunc                   func(string, string) (int, int, error)
	ReflogContainsFunc                func(string, string, int) (bool, error)
	ConfigStringFunc                  func(string) (string, bool, error)
	ReadIndexBlobFunc                 func(string) ([]byte, bool, error)
	IndexPathsUnderFunc               func(string) ([]string, error)
	RemoteNamesFunc                   func() ([]string, error)
	RemoteHeadBranchFunc              func(string) (string, bool, error)
	ResolveRefFunc                    func(string) (string, bool, error)
	IsAncestorFunc                    func(string, string, int) (bool, error)
	FetchBestEffortFunc               func() error
	StageTrackedFunc                  func() error
	CommitFunc                        func() error
	RenameCurrentBranchAndSwitchFunc  func(string) error
	CreateBranchAndSwitchFunc         func(string) error
	RebaseOntoUpstreamFunc            func(string, string) error
	PushFunc                          func(string, *UpstreamTarget, bool) error
	DeleteLocalBranchFunc             func(string) error
	DeleteRemoteBranchesFunc          func(string, []string) error
}

func (m *MockRepository) Path() string {
	if m.PathFunc != nil {
		return m.PathFunc()
	}
	return ""
}

func (m *MockRepository) WorkingDirectory() string {
	if m.WorkingDirectoryFunc != nil {
		return m.WorkingDirectoryFunc()
	}
	return ""
}

func (m *MockRepository) IsBare() bool {
	if m.IsBareFunc != nil {
		return m.IsBareFunc()
	}
	return false
}

func (m *MockRepository) Head() (HeadState, error) {
	if m.HeadFunc != nil {
		return m.HeadFunc()
	}
	return HeadState{}, nil
}

func (m *MockRepository) HeadCommitMessage() (string, error) {
	if m.HeadCommitMessageFunc != nil {
		return m.HeadCommitMessageFunc()
	}
	return "", nil
}

func (m *MockRepository) Status() (WorkingTreeStatus, error) {
	if m.StatusFunc != nil {
		return m.StatusFunc()
	}
	return WorkingTreeStatus{}, nil
}

func (m *MockRepository) Branches() ([]BranchRecord, error) {
	if m.BranchesFunc != nil {
		return m.BranchesFunc()
	}
	return nil, nil
}

func (m *MockRepository) UpstreamRef(branchShortName string) (string, bool, error) {
	if m.UpstreamRefFunc != nil {
		return m.UpstreamRefFunc(branchShortName)
	}
	return "", false, nil
}

func (m *MockRepository) AheadBehind(fromSha, toSha string) (int, int, error) {
	if m.AheadBehindFunc != nil {
		return m.AheadBehindFunc(fromSha, toSha)
	}
	return 0, 0, nil
}

func (m *MockRepository) ReflogContains(ref, sha string, limit int) (bool, error) {
	if m.ReflogContainsFunc != nil {
		return m.ReflogContainsFunc(ref, sha, limit)
	}
	return false, nil
}

func (m *MockRepository) ConfigString(key string) (string, bool, error) {
	if m.ConfigStringFunc != nil {
		return m.ConfigStringFunc(key)
	}
	return "", false, nil
}

func (m *MockRepository) ReadIndexBlob(path string) ([]byte, bool, error) {
	if m.ReadIndexBlobFunc != nil {
		return m.ReadIndexBlobFunc(path)
	}
	return nil, false, nil
}

func (m *MockRepository) IndexPathsUnder(prefix string) ([]string, error) {
	if m.IndexPathsUnderFunc != nil {
		return m.IndexPathsUnderFunc(prefix)
	}
	return nil, nil
}

func (m *MockRepository) RemoteNames() ([]string, error) {
	if m.RemoteNamesFunc != nil {
		return m.RemoteNamesFunc()
	}
	return nil, nil
}

func (m *MockRepository) ResolveRef(ref string) (string, bool, error) {
	if m.ResolveRefFunc != nil {
		return m.ResolveRefFunc(ref)
	}
	return "", false, nil
}

func (m *MockRepository) RemoteHeadBranch(remote string) (string, bool, error) {
	if m.RemoteHeadBranchFunc != nil {
		return m.RemoteHeadBranchFunc(remote)
	}
	return "", false, nil
}

func (m *MockRepository) IsAncestor(ancestorSha, descendantSha string, limit int) (bool, error) {
	if m.IsAncestorFunc != nil {
		return m.IsAncestorFunc(ancestorSha, descendantSha, limit)
	}
	return false, nil
}

func (m *MockRepository) FetchBestEffort() error {
	if m.FetchBestEffortFunc != nil {
		return m.FetchBestEffortFunc()
	}
	return nil
}

func (m *MockRepository) StageTracked() error {
	if m.StageTrackedFunc != nil {
		return m.StageTrackedFunc()
	}
	return nil
}

func (m *MockRepository) Commit() error {
	if m.CommitFunc != nil {
		return m.CommitFunc()
	}
	return nil
}

func (m *MockRepository) RenameCurrentBranchAndSwitch(newName string) error {
	if m.RenameCurrentBranchAndSwitchFunc != nil {
		return m.RenameCurrentBranchAndSwitchFunc(newName)
	}
	return nil
}

func (m *MockRepository) CreateBranchAndSwitch(newName string) error {
	if m.CreateBranchAndSwitchFunc != nil {
		return m.CreateBranchAndSwitchFunc(newName)
	}
	return nil
}

func (m *MockRepository) RebaseOntoUpstream(remote, branch string) error {
	if m.RebaseOntoUpstreamFunc != nil {
		return m.RebaseOntoUpstreamFunc(remote, branch)
	}
	return nil
}

func (m *MockRepository) Push(headBranch string, upstream *UpstreamTarget, cooperative bool) error {
	if m.PushFunc != nil {
		return m.PushFunc(headBranch, upstream, cooperative)
	}
	return nil
}

func (m *MockRepository) DeleteLocalBranch(name string) error {
	if m.DeleteLocalBranchFunc != nil {
		return m.DeleteLocalBranchFunc(name)
	}
	return nil
}

func (m *MockRepository) DeleteRemoteBranches(remote string, branches []string) error {
	if m.DeleteRemoteBranchesFunc != nil {
		return m.DeleteRemoteBranchesFunc(remote, branches)
	}
	return nil
}
