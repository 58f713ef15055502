package tui

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-cred-keeper/internal/adapter"
	"github.com/MKhiriev/go-cred-keeper/internal/app"
	"github.com/MKhiriev/go-cred-keeper/internal/mock"
	"github.com/MKhiriev/go-cred-keeper/internal/service"
	"github.com/MKhiriev/go-cred-keeper/models"
)

const (
	testWallet = "0x1111111111111111111111111111111111111111"
	testHash   = "3f1d2a1c06a8b0b1c1e6b2b0c0d7e3e0f9a8b7c6d5e4f3a2b1c0d9e8f7a6b5c4"
	testCID    = "bafkreigh2akiscaildcqabsyg3dfr6chu3fgpregiymsck7e7aqa4s52zy"
)

func stubClipboard(t *testing.T) *[]string {
	t.Helper()
	var copied []string
	orig := writeClipboard
	writeClipboard = func(v string) error {
		copied = append(copied, v)
		return nil
	}
	t.Cleanup(func() { writeClipboard = orig })
	return &copied
}

func TestMenu_ShowsLogoutFailure(t *testing.T) {
	m := NewMenuModel()

	m.Update(loggedOut{err: errors.New("vault locked")})
	assert.Contains(t, m.View(), "Error: Logout failed: vault locked")

	m.Update(loggedOut{})
	view := m.View()
	assert.Contains(t, view, "OK: Logged out")
	assert.NotContains(t, view, "Error:")
}

func TestMenu_SelectsPortal(t *testing.T) {
	m := NewMenuModel()

	_, msgs := update(t, m, keyDown)
	assert.Empty(t, msgs)

	_, msgs = update(t, m, keyEnter)
	nav, ok := find[NavigateTo](msgs)
	require.True(t, ok)
	assert.Equal(t, pageLogin, nav.Page)
	assert.Equal(t, roleSelected{role: models.RoleUniversity}, nav.Payload)

	for i := 0; i < 10; i++ {
		m.Update(keyDown)
	}
	_, msgs = update(t, m, keyEnter)
	nav, _ = find[NavigateTo](msgs)
	assert.Equal(t, pageChat, nav.Page)
}

func TestLogin_RequiresCredentials(t *testing.T) {
	m := NewLoginModel(testCtx, newTestDeps(t).auth)
	m.Update(roleSelected{role: models.RoleStudent})

	_, msgs := update(t, m, keyEnter)
	assert.Empty(t, msgs)
	assert.Contains(t, m.View(), app.MsgMissingCredentials)
}

func TestLogin_Submits(t *testing.T) {
	deps := newTestDeps(t)
	identity := models.Identity{Wallet: testWallet, Name: "Alice", Role: models.RoleUniversity}
	deps.auth.EXPECT().Login(gomock.Any(), models.RoleUniversity, "alice", "pw").Return(identity, nil)

	m := NewLoginModel(testCtx, deps.auth)
	m.Update(roleSelected{role: models.RoleUniversity})
	m.inputs[0].SetValue("  alice ")
	m.inputs[1].SetValue("pw")

	_, msgs := update(t, m, keyEnter)
	result, ok := find[LoginResult](msgs)
	require.True(t, ok)
	assert.NoError(t, result.Err)
	assert.Equal(t, identity, result.Identity)
	assert.True(t, m.form.busy())

	_, msgs = update(t, m, keyEnter)
	assert.Empty(t, msgs, "no second call while one is in flight")
}

func TestLogin_ShowsRoleMismatch(t *testing.T) {
	m := NewLoginModel(testCtx, newTestDeps(t).auth)
	m.Update(roleSelected{role: models.RoleUniversity})

	m.Update(LoginResult{Err: &service.RoleMismatchError{Registered: models.RoleStudent, Requested: models.RoleUniversity}})
	assert.Contains(t, m.View(), "This account is registered as Student, not University.")
}

func TestLogin_OpensRegistration(t *testing.T) {
	m := NewLoginModel(testCtx, newTestDeps(t).auth)
	m.Update(roleSelected{role: models.RoleUniversity})

	_, msgs := update(t, m, keyCtrlN)
	nav, ok := find[NavigateTo](msgs)
	require.True(t, ok)
	assert.Equal(t, NavigateTo{Page: pageRegister, Payload: roleSelected{role: models.RoleUniversity}}, nav)
}

func TestRegister_Flow(t *testing.T) {
	deps := newTestDeps(t)
	registration := models.Registration{Address: testWallet, Mnemonic: "w1 w2 w3", Message: app.MsgRegistrationPending}
	deps.auth.EXPECT().Register(gomock.Any(), models.RoleUniversity, "MIT", "mit", "pw").Return(registration, nil)

	m := NewRegisterModel(testCtx, deps.auth)
	m.Update(roleSelected{role: models.RoleUniversity})
	assert.Contains(t, m.View(), "University name")

	m.inputs[registerName].SetValue("MIT")
	m.inputs[registerUsername].SetValue("mit")
	m.inputs[registerPassword].SetValue("pw")
	m.inputs[registerConfirm].SetValue("other")
	m.focus = focusInput(m.inputs, m.focus, registerConfirm)

	_, msgs := update(t, m, keyEnter)
	assert.Empty(t, msgs)
	assert.Contains(t, m.View(), "Passwords do not match")

	m.inputs[registerConfirm].SetValue("pw")
	_, msgs = update(t, m, keyEnter)
	result, ok := find[RegisterResult](msgs)
	require.True(t, ok)
	require.NoError(t, result.Err)

	_, msgs = update(t, m, result)
	nav, ok := find[NavigateTo](msgs)
	require.True(t, ok)
	assert.Equal(t, pageMnemonic, nav.Page)
	assert.Equal(t, registrationShown{role: models.RoleUniversity, registration: registration}, nav.Payload)
}

func TestRegister_EnterMovesFocusFirst(t *testing.T) {
	m := NewRegisterModel(testCtx, newTestDeps(t).auth)

	_, msgs := update(t, m, keyEnter)
	assert.Empty(t, msgs)
	assert.Equal(t, registerUsername, m.focus)
}

func TestMnemonic_CopyAndContinue(t *testing.T) {
	copied := stubClipboard(t)
	m := NewMnemonicModel()
	m.Update(registrationShown{
		role:         models.RoleStudent,
		registration: models.Registration{Address: testWallet, Mnemonic: "alpha beta", Message: app.MsgRegistrationSuccess},
	})

	view := m.View()
	assert.Contains(t, view, testWallet)
	assert.Contains(t, view, "1. alpha")
	assert.Contains(t, view, app.MsgRegistrationSuccess)

	_, msgs := update(t, m, runeKey('c'))
	c, ok := find[copiedMsg](msgs)
	require.True(t, ok)
	assert.Equal(t, []string{"alpha beta"}, *copied)

	m.Update(c)
	assert.Contains(t, m.View(), "Recovery phrase copied")

	_, msgs = update(t, m, keyEnter)
	nav, _ := find[NavigateTo](msgs)
	assert.Equal(t, NavigateTo{Page: pageLogin, Payload: roleSelected{role: models.RoleStudent}}, nav)
}

func TestAdminLogin(t *testing.T) {
	deps := newTestDeps(t)
	identity := models.Identity{Wallet: testWallet, Name: "Government", Role: models.RoleGov}
	deps.auth.EXPECT().AdminLogin(gomock.Any(), "U2FsdGVk...", "secret").Return(identity, nil)

	orig := readKeyFile
	readKeyFile = func(path string) ([]byte, error) {
		if path == "admin.json" {
			return []byte("U2FsdGVk..."), nil
		}
		return nil, errors.New("no such file")
	}
	t.Cleanup(func() { readKeyFile = orig })

	m := NewAdminLoginModel(testCtx, deps.auth)
	m.focus = focusInput(m.inputs, m.focus, adminPassword)

	m.Update(keyEnter)
	assert.Contains(t, m.View(), app.MsgKeyFileMissing)

	m.inputs[adminKeyFile].SetValue("admin.json")
	m.Update(keyEnter)
	assert.Contains(t, m.View(), app.MsgKeyFilePassword)

	m.inputs[adminPassword].SetValue("secret")
	m.inputs[adminKeyFile].SetValue("missing.json")
	m.Update(keyEnter)
	assert.Contains(t, m.View(), "Cannot read key file")

	m.inputs[adminKeyFile].SetValue("admin.json")
	_, msgs := update(t, m, keyEnter)
	result, ok := find[LoginResult](msgs)
	require.True(t, ok)
	assert.Equal(t, identity, result.Identity)

	m.Update(LoginResult{Err: service.ErrAdminLogin})
	assert.Contains(t, m.View(), app.MsgAdminLoginFailed)
}

func TestRecover(t *testing.T) {
	copied := stubClipboard(t)
	deps := newTestDeps(t)
	account := models.NewAccount{Address: testWallet, PrivateKey: "0xPRIVATEKEYPRIVATEKEYPRIVATEKEY"}
	deps.auth.EXPECT().Recover(gomock.Any(), "one two three").Return(account, nil)

	m := NewRecoverModel(testCtx, deps.auth)
	m.Init()

	m.Update(keyEnter)
	assert.Contains(t, m.View(), app.MsgMissingMnemonic)

	m.input.SetValue("one two three")
	_, msgs := update(t, m, keyEnter)
	recovered, ok := find[recoveredMsg](msgs)
	require.True(t, ok)

	m.Update(recovered)
	view := m.View()
	assert.Contains(t, view, testWallet)
	assert.NotContains(t, view, account.PrivateKey)
	assert.Contains(t, view, "c: copy private key")

	_, msgs = update(t, m, runeKey('c'))
	_, ok = find[copiedMsg](msgs)
	require.True(t, ok)
	assert.Equal(t, []string{account.PrivateKey}, *copied)
}

func TestHolder_LoadsAndActs(t *testing.T) {
	copied := stubClipboard(t)
	deps := newTestDeps(t)
	dir := t.TempDir()
	items := []models.Credential{
		{Hash: testHash, Issuer: testWallet, CID: testCID, IssuedAt: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)},
		{Hash: "ab" + testHash[2:], Issuer: testWallet, CID: "cid-2", Revoked: true},
	}
	deps.credentials.EXPECT().List(gomock.Any()).Return(items, nil)
	deps.credentials.EXPECT().Link(gomock.Any()).DoAndReturn(func(cid string) string { return "http://gw/ipfs/" + cid }).AnyTimes()
	deps.credentials.EXPECT().Download(gomock.Any(), "cid-2", dir).Return(dir+"/credential-cid-2.pdf", nil)

	m := NewHolderModel(testCtx, deps.credentials, dir)
	_, msgs := update(t, m, sessionStarted{identity: models.Identity{Wallet: testWallet, Name: "Alice", Role: models.RoleStudent}})
	loaded, ok := find[credentialsLoadedMsg](msgs)
	require.True(t, ok)
	m.Update(loaded)

	view := m.View()
	assert.Contains(t, view, "STUDENT PORTAL · Alice")
	assert.Contains(t, view, "2026-03-01")
	assert.Contains(t, view, "Active")
	assert.Contains(t, view, "Revoked")
	assert.Contains(t, view, "http://gw/ipfs/"+testCID)

	m.Update(keyDown)
	_, msgs = update(t, m, runeKey('h'))
	_, ok = find[copiedMsg](msgs)
	require.True(t, ok)
	_, msgs = update(t, m, runeKey('c'))
	_, ok = find[copiedMsg](msgs)
	require.True(t, ok)
	assert.Equal(t, []string{items[1].Hash, "http://gw/ipfs/cid-2"}, *copied)

	_, msgs = update(t, m, runeKey('d'))
	done, ok := find[actionDoneMsg](msgs)
	require.True(t, ok)
	m.Update(done)
	assert.Contains(t, m.View(), "Saved to "+dir)

	_, msgs = update(t, m, keyCtrlL)
	_, ok = find[logoutRequested](msgs)
	assert.True(t, ok)
}

func TestHolder_ListFailure(t *testing.T) {
	m := NewHolderModel(testCtx, newTestDeps(t).credentials, ".")

	m.Update(credentialsLoadedMsg{err: &adapter.RequestError{Op: "list credentials", Err: adapter.ErrTransport}})
	assert.Contains(t, m.View(), app.MsgListFailed)
	assert.Contains(t, m.View(), "No credentials yet.")
}

func TestIssuer_IssueAndRevoke(t *testing.T) {
	deps := newTestDeps(t)
	issued := models.IssuedCredential{Hash: testHash, CID: testCID}
	deps.credentials.EXPECT().Issue(gomock.Any(), testWallet, "diploma.pdf").Return(issued, nil)
	deps.credentials.EXPECT().Revoke(gomock.Any(), testHash).Return(nil)
	deps.credentials.EXPECT().List(gomock.Any()).Return([]models.Credential{{Hash: testHash, Holder: testWallet, CID: testCID}}, nil).AnyTimes()
	deps.credentials.EXPECT().Link(gomock.Any()).Return("http://gw").AnyTimes()

	m := NewIssuerModel(testCtx, deps.credentials)
	m.Update(sessionStarted{identity: models.Identity{Wallet: "0xUNI", Name: "MIT", Role: models.RoleUniversity}})
	assert.Contains(t, m.View(), "UNIVERSITY PORTAL · MIT")

	m.Update(keyTab)
	m.Update(keyEnter)
	assert.Contains(t, m.View(), app.MsgMissingHolderOrFile)

	m.issueInputs[issueHolder].SetValue(testWallet)
	m.issueInputs[issuePath].SetValue("diploma.pdf")
	_, msgs := update(t, m, keyEnter)
	done, ok := find[issuedMsg](msgs)
	require.True(t, ok)

	_, msgs = update(t, m, done)
	assert.Contains(t, m.View(), app.MsgIssueSuccess+". Credential ID: "+testHash)
	loaded, ok := find[credentialsLoadedMsg](msgs)
	require.True(t, ok)
	m.Update(loaded)

	m.Update(keyCtrlT)
	m.Update(keyCtrlT)
	assert.Equal(t, tabIssued, m.tab)
	assert.Contains(t, m.View(), "Holder")

	m.Update(keyEnter)
	assert.Equal(t, tabRevoke, m.tab)
	assert.Equal(t, testHash, m.revokeInput.Value())

	_, msgs = update(t, m, keyEnter)
	revoked, ok := find[revokedMsg](msgs)
	require.True(t, ok)
	m.Update(revoked)
	assert.Contains(t, m.View(), app.MsgRevokeSuccess)
	assert.Empty(t, m.revokeInput.Value())
}

func TestIssuer_RevokeErrors(t *testing.T) {
	m := NewIssuerModel(testCtx, newTestDeps(t).credentials)
	m.switchTab(tabRevoke)

	m.Update(keyEnter)
	assert.Contains(t, m.View(), app.MsgMissingCredentialID)

	m.Update(revokedMsg{err: &adapter.RequestError{Op: "revoke credential", Message: "Credential already revoked", Err: adapter.ErrConflict}})
	assert.Contains(t, m.View(), "Credential already revoked")
}

func TestGov_Decisions(t *testing.T) {
	deps := newTestDeps(t)
	pending := []models.IssuerRequest{{UniversityName: "MIT", Address: "0xA", Status: models.RequestPending}}
	approved := []models.IssuerRequest{{UniversityName: "ETH", Address: "0xB", Status: models.RequestApproved}}
	deps.issuers.EXPECT().Pending(gomock.Any()).Return(pending, nil).Times(2)
	deps.issuers.EXPECT().Approved(gomock.Any()).Return(approved, nil).Times(2)
	deps.issuers.EXPECT().Approve(gomock.Any(), "MIT").Return(nil)

	m := NewGovModel(testCtx, deps.issuers)
	_, msgs := update(t, m, sessionStarted{identity: models.Identity{Role: models.RoleGov}})
	loaded, ok := find[requestsLoadedMsg](msgs)
	require.True(t, ok)
	m.Update(loaded)
	assert.Contains(t, m.View(), "MIT")
	assert.NotContains(t, m.View(), "ETH")

	_, msgs = update(t, m, runeKey('a'))
	done, ok := find[actionDoneMsg](msgs)
	require.True(t, ok)

	_, msgs = update(t, m, done)
	loaded, ok = find[requestsLoadedMsg](msgs)
	require.True(t, ok)
	m.Update(loaded)
	assert.Contains(t, m.View(), app.MsgApproveSuccess+": MIT")

	m.Update(keyCtrlT)
	assert.Contains(t, m.View(), "ETH")

	_, msgs = update(t, m, runeKey('x'))
	assert.Empty(t, msgs, "approved requests cannot be rejected")
}

func TestGov_DecisionFailure(t *testing.T) {
	m := NewGovModel(testCtx, newTestDeps(t).issuers)

	m.Update(actionDoneMsg{err: assert.AnError})
	assert.Contains(t, m.View(), app.MsgDecisionFailed)
}

func TestVerifier_Outcomes(t *testing.T) {
	deps := newTestDeps(t)
	deps.credentials.EXPECT().Link(testCID).Return("http://gw/ipfs/" + testCID).AnyTimes()

	tests := []struct {
		name   string
		result models.VerifyResult
		want   string
	}{
		{"valid", models.VerifyResult{Hash: testHash, Valid: true, Credential: &models.Credential{Issuer: "0xUNI", Holder: testWallet, CID: testCID}}, app.MsgCredentialValid},
		{"revoked", models.VerifyResult{Hash: testHash, Revoked: true, Credential: &models.Credential{Issuer: "0xUNI"}}, app.MsgCredentialRevoked},
		{"unknown", models.VerifyResult{Hash: testHash}, app.MsgCredentialUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewVerifierModel(testCtx, deps.credentials)
			m.Update(verifiedMsg{result: tt.result})
			assert.Contains(t, m.View(), tt.want)
			assert.Contains(t, m.View(), testHash)
		})
	}
}

func TestVerifier_Submit(t *testing.T) {
	deps := newTestDeps(t)
	deps.credentials.EXPECT().Verify(gomock.Any(), "doc.pdf").Return(models.VerifyResult{Hash: testHash}, nil)

	m := NewVerifierModel(testCtx, deps.credentials)
	m.Update(keyEnter)
	assert.Contains(t, m.View(), app.MsgMissingFile)

	m.input.SetValue("doc.pdf")
	_, msgs := update(t, m, keyEnter)
	verified, ok := find[verifiedMsg](msgs)
	require.True(t, ok)
	assert.Equal(t, testHash, verified.result.Hash)
}

func TestChat(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock.NewMockChatClient(ctrl)
	client.EXPECT().Send(gomock.Any(), "how do I verify?").Return("Open Verify a document.", nil)

	m := NewChatModel(testCtx, client)
	assert.Contains(t, m.View(), app.MsgChatGreeting)

	m.input.SetValue("  how do I verify?  ")
	_, msgs := update(t, m, keyEnter)
	reply, ok := find[chatReplyMsg](msgs)
	require.True(t, ok)
	m.Update(reply)

	view := m.View()
	assert.Contains(t, view, "You: how do I verify?")
	assert.Contains(t, view, "Open Verify a document.")
}

func TestChat_Unconfigured(t *testing.T) {
	m := NewChatModel(testCtx, nil)
	m.input.SetValue("hello")

	_, msgs := update(t, m, keyEnter)
	reply, ok := find[chatReplyMsg](msgs)
	require.True(t, ok)
	assert.ErrorIs(t, reply.err, errChatUnavailable)

	m.Update(reply)
	assert.Contains(t, m.View(), app.MsgChatUnreachable)
}

func TestChat_HistoryIsBounded(t *testing.T) {
	m := NewChatModel(testCtx, nil)
	for i := 0; i < chatHistoryLimit*2; i++ {
		m.push(chatLine{text: "x"})
	}
	assert.Len(t, m.history, chatHistoryLimit)
}
