//go:build cgo

package tpm2_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-tpm-tools/simulator"
	"github.com/google/go-tpm/tpm2/transport"

	"github.com/google/go-tpm-wire/tpm2"
	"github.com/google/go-tpm-wire/tpmutil"
)

func openSimulator(t *testing.T) transport.TPMCloser {
	t.Helper()
	sim, err := simulator.Get()
	if err != nil {
		t.Fatalf("could not connect to TPM simulator: %v", err)
	}
	tpm := transport.FromReadWriteCloser(sim)
	t.Cleanup(func() {
		if err := tpm.Close(); err != nil {
			t.Errorf("Close() = %v", err)
		}
	})
	return tpm
}

// command frames the given handles and parameters behind a command header.
func command(t *testing.T, tag tpm2.TPMST, cc tpm2.TPMCC, parts ...interface{}) []byte {
	t.Helper()
	body := tpmutil.NewWriter()
	if err := tpm2.MarshalTo(body, parts...); err != nil {
		t.Fatalf("MarshalTo(%v) = %v", cc, err)
	}
	w := tpmutil.NewWriter()
	hdr := tpm2.TPMCmdHeader{Tag: tag, Length: uint32(10 + body.Len()), CommandCode: cc}
	if err := tpm2.MarshalTo(w, hdr, tpmutil.RawBytes(body.Bytes())); err != nil {
		t.Fatalf("MarshalTo(header) = %v", err)
	}
	return w.Bytes()
}

// execute sends cmd and decodes the response into outs, requiring that the
// response is consumed exactly.
func execute(t *testing.T, tpm transport.TPM, cmd []byte, outs ...interface{}) error {
	t.Helper()
	rsp, err := tpm.Send(cmd)
	if err != nil {
		t.Fatalf("Send() = %v", err)
	}
	r := tpmutil.NewReader(rsp)
	var hdr tpm2.TPMRspHeader
	if err := tpm2.UnmarshalFrom(r, &hdr); err != nil {
		t.Fatalf("decoding response header: %v", err)
	}
	if int(hdr.Length) != len(rsp) {
		t.Fatalf("header length %d, response is %d bytes", hdr.Length, len(rsp))
	}
	if hdr.ResponseCode != tpm2.TPMRCSuccess {
		if err := r.Finish(); err != nil {
			t.Errorf("error response has a body: %v", err)
		}
		return hdr.ResponseCode
	}
	if err := tpm2.UnmarshalFrom(r, outs...); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if err := r.Finish(); err != nil {
		t.Fatalf("response not fully consumed: %v", err)
	}
	return nil
}

// passwordAuth is an authorization area holding one empty password session.
func passwordAuth(t *testing.T) []interface{} {
	t.Helper()
	auth := tpm2.TPMSAuthCommand{Handle: tpm2.TPMRSPW}
	b, err := tpm2.Marshal(auth)
	if err != nil {
		t.Fatalf("Marshal(auth) = %v", err)
	}
	return []interface{}{uint32(len(b)), tpmutil.RawBytes(b)}
}

func TestSimulatorGetCapability(t *testing.T) {
	tpm := openSimulator(t)
	for _, tc := range []struct {
		name     string
		cap      tpm2.TPMCap
		property uint32
		count    uint32
	}{
		{"algorithms", tpm2.TPMCapAlgs, uint32(tpm2.TPMAlgRSA), 64},
		{"fixed properties", tpm2.TPMCapTPMProperties, uint32(tpm2.TPMPTFamilyIndicator), 10},
		{"pcrs", tpm2.TPMCapPCRs, 0, 1},
		{"ecc curves", tpm2.TPMCapECCCurves, uint32(tpm2.TPMECCNistP192), 16},
		{"handles", tpm2.TPMCapHandles, uint32(tpm2.TPMRHOwner), 8},
	} {
		t.Run(tc.name, func(t *testing.T) {
			cmd := command(t, tpm2.TPMSTNoSessions, tpm2.TPMCCGetCapability, tc.cap, tc.property, tc.count)
			var more bool
			var data tpm2.TPMSCapabilityData
			if err := execute(t, tpm, cmd, &more, &data); err != nil {
				t.Fatalf("TPM2_GetCapability: %v", err)
			}
			if data.Capability != tc.cap {
				t.Errorf("Capability = %v, want %v", data.Capability, tc.cap)
			}
		})
	}
}

func TestSimulatorAlgorithms(t *testing.T) {
	tpm := openSimulator(t)
	cmd := command(t, tpm2.TPMSTNoSessions, tpm2.TPMCCGetCapability, tpm2.TPMCapAlgs, uint32(tpm2.TPMAlgRSA), uint32(64))
	var more bool
	var data tpm2.TPMSCapabilityData
	if err := execute(t, tpm, cmd, &more, &data); err != nil {
		t.Fatalf("TPM2_GetCapability: %v", err)
	}
	algs, err := data.Data.Algorithms()
	if err != nil {
		t.Fatalf("Algorithms() = %v", err)
	}
	found := false
	for _, p := range algs.AlgProperties {
		if p.Alg == tpm2.TPMAlgSHA256 {
			found = true
			if p.AlgProperties&tpm2.TPMAAlgorithmHash == 0 {
				t.Errorf("SHA256 properties = %v", p.AlgProperties)
			}
		}
	}
	if !found {
		t.Errorf("TPM_ALG_SHA256 not reported")
	}
}

func TestSimulatorCreatePrimary(t *testing.T) {
	tpm := openSimulator(t)
	sensitive := tpm2.NewTPM2B(&tpm2.TPMSSensitiveCreate{})
	inPublic := tpm2.NewTPM2B(&tpm2.ECCSRKTemplate)

	parts := []interface{}{tpm2.TPMRHOwner}
	parts = append(parts, passwordAuth(t)...)
	parts = append(parts, &sensitive, &inPublic, tpm2.TPM2BData{}, tpm2.TPMLPCRSelection{})
	cmd := command(t, tpm2.TPMSTSessions, tpm2.TPMCCCreatePrimary, parts...)

	var (
		handle       tpm2.TPMHandle
		paramSize    uint32
		outPublic    tpm2.TPM2BPublic
		creationData tpm2.TPM2BCreationData
		creationHash tpm2.TPM2BDigest
		ticket       tpm2.TPMTTKCreation
		name         tpm2.TPM2BName
		authRsp      tpm2.TPMSAuthResponse
	)
	if err := execute(t, tpm, cmd, &handle, &paramSize, &outPublic, &creationData,
		&creationHash, &ticket, &name, &authRsp); err != nil {
		t.Fatalf("TPM2_CreatePrimary: %v", err)
	}
	defer func() {
		flush := command(t, tpm2.TPMSTNoSessions, tpm2.TPMCCFlushContext, handle)
		if err := execute(t, tpm, flush); err != nil {
			t.Errorf("TPM2_FlushContext: %v", err)
		}
	}()

	if handle.Type() != tpm2.TPMHTTransient {
		t.Errorf("handle %v is not transient", handle)
	}
	pub, err := outPublic.Contents()
	if err != nil {
		t.Fatalf("Contents() = %v", err)
	}
	point, err := pub.Unique.ECC()
	if err != nil {
		t.Fatalf("ECC() = %v", err)
	}
	if len(point.X.Buffer) != 32 || len(point.Y.Buffer) != 32 {
		t.Errorf("point sizes = %d, %d", len(point.X.Buffer), len(point.Y.Buffer))
	}
	if ticket.Tag != tpm2.TPMSTCreation {
		t.Errorf("ticket tag = %v", ticket.Tag)
	}

	readPublic := command(t, tpm2.TPMSTNoSessions, tpm2.TPMCCReadPublic, handle)
	var (
		readPub       tpm2.TPM2BPublic
		readName      tpm2.TPM2BName
		qualifiedName tpm2.TPM2BName
	)
	if err := execute(t, tpm, readPublic, &readPub, &readName, &qualifiedName); err != nil {
		t.Fatalf("TPM2_ReadPublic: %v", err)
	}
	if !readPub.Equal(outPublic) {
		t.Errorf("ReadPublic returned a different public area")
	}
	if !bytes.Equal(readName.Buffer, name.Buffer) {
		t.Errorf("names differ: %x vs %x", readName.Buffer, name.Buffer)
	}
}

func TestSimulatorErrorResponse(t *testing.T) {
	tpm := openSimulator(t)
	// TPM_SU_CLEAR on a TPM that has already been started.
	cmd := command(t, tpm2.TPMSTNoSessions, tpm2.TPMCCStartup, tpm2.TPMSUClear)
	err := execute(t, tpm, cmd)
	if !errors.Is(err, tpm2.TPMRCInitialize) {
		t.Errorf("TPM2_Startup = %v, want TPM_RC_INITIALIZE", err)
	}
}

func TestSimulatorPCRRead(t *testing.T) {
	tpm := openSimulator(t)
	sel, err := tpm2.NewPCRSelection(tpm2.TPMAlgSHA256, 0, 7, 16)
	if err != nil {
		t.Fatalf("NewPCRSelection() = %v", err)
	}
	in := tpm2.TPMLPCRSelection{PCRSelections: []tpm2.TPMSPCRSelection{sel}}
	cmd := command(t, tpm2.TPMSTNoSessions, tpm2.TPMCCPCRRead, in)

	var (
		updateCounter uint32
		out           tpm2.TPMLPCRSelection
		values        tpm2.TPMLDigest
	)
	if err := execute(t, tpm, cmd, &updateCounter, &out, &values); err != nil {
		t.Fatalf("TPM2_PCR_Read: %v", err)
	}
	if len(out.PCRSelections) != 1 {
		t.Fatalf("got %d selections", len(out.PCRSelections))
	}
	got := out.PCRSelections[0].PCRs()
	if len(got) != len(values.Digests) {
		t.Errorf("%d PCRs selected, %d digests returned", len(got), len(values.Digests))
	}
	for i, d := range values.Digests {
		if len(d.Buffer) != 32 {
			t.Errorf("digest %d is %d bytes", i, len(d.Buffer))
		}
	}
}
