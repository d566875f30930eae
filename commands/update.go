package commands

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"runtime"
	"strings"

	"code.cloudfoundry.org/clock"

	"github.com/pivotal-cf/pw-alert/apply"
	"github.com/pivotal-cf/pw-alert/net"
)

const latestReleaseURL = "https://api.github.com/repos/pivotal-cf/pw-alert/releases/latest"

type UpdateCommand struct {
	ReleaseURL string `long:"release-url" description:"GitHub API URL of the release to update to" value-name:"URL"`
}

type gitHubAsset struct {
	Name               string `json:"name"`
	BrowserDownloadURL string `json:"browser_download_url"`
}

type gitHubRelease struct {
	TagName         string        `json:"tag_name"`
	TargetCommitish string        `json:"target_commitish"`
	Assets          []gitHubAsset `json:"assets"`
}

func (command *UpdateCommand) Execute(args []string) error {
	client := net.NewRetryingClient(&http.Client{}, clock.NewClock(), 3)

	releaseURL := command.ReleaseURL
	if releaseURL == "" {
		releaseURL = latestReleaseURL
	}

	body, err := fetch(client, releaseURL)
	if err != nil {
		return fmt.Errorf("error fetching latest release: %s", err)
	}
	defer body.Close()

	var release gitHubRelease
	if err := json.NewDecoder(body).Decode(&release); err != nil {
		return err
	}

	latestVersion := fmt.Sprintf("%s (%s)", release.TagName, release.TargetCommitish)
	if version == latestVersion {
		fmt.Println("Already up to date.")
		return nil
	}

	assetName := fmt.Sprintf("pw-alert_%s", runtime.GOOS)
	binaryURL, checksumURL := release.find(assetName), release.find(assetName+".sha256")
	if binaryURL == "" {
		return errors.New("unable to update pw-alert for this OS")
	}
	if checksumURL == "" {
		return errors.New("latest release does not publish a checksum for this OS")
	}

	checksum, err := fetchChecksum(client, checksumURL)
	if err != nil {
		return err
	}

	fmt.Println("Downloading new pw-alert...")
	binary, err := fetch(client, binaryURL)
	if err != nil {
		return fmt.Errorf("error downloading latest release: %s", err)
	}
	defer binary.Close()

	if err := apply.Apply(binary, checksum); err != nil {
		return err
	}

	fmt.Printf("Upgraded from %s to %s.\n", version, latestVersion)

	return nil
}

func (r gitHubRelease) find(name string) string {
	for _, asset := range r.Assets {
		if asset.Name == name {
			return asset.BrowserDownloadURL
		}
	}

	return ""
}

func fetch(client net.Client, url string) (io.ReadCloser, error) {
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, errors.New(resp.Status)
	}

	return resp.Body, nil
}

// fetchChecksum reads a sha256sum style file and returns the digest from
// its first field.
func fetchChecksum(client net.Client, url string) ([]byte, error) {
	body, err := fetch(client, url)
	if err != nil {
		return nil, fmt.Errorf("error downloading checksum: %s", err)
	}
	defer body.Close()

	bs, err := io.ReadAll(io.LimitReader(body, 1024))
	if err != nil {
		return nil, err
	}

	fields := strings.Fields(string(bs))
	if len(fields) == 0 {
		return nil, errors.New("checksum file is empty")
	}

	return hex.DecodeString(fields[0])
}
